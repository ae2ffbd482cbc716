package handlers

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"speechbench/internal/app/compare"
	"speechbench/internal/app/render"
)

// FuncMap returns the helpers available to page templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"currency": render.Currency,
		"score":    render.Score,
		"stars":    compare.Stars,
		"join":     strings.Join,
		"pct":      percent,
		"add":      func(a, b int) int { return a + b },
		"quizURL":  quizURL,
	}
}

// percent renders v as a share of peak for CSS widths, clamped to 0-100
func percent(v, peak float64) string {
	if peak <= 0 || v <= 0 {
		return "0"
	}
	p := v / peak * 100
	if p > 100 {
		p = 100
	}
	return fmt.Sprintf("%.2f", p)
}

// quizURL links to the quiz page with answers followed by next
func quizURL(answers []string, next string) string {
	q := url.Values{}
	for _, a := range answers {
		q.Add("a", a)
	}
	if next != "" {
		q.Add("a", next)
	}
	if len(q) == 0 {
		return "/quiz"
	}
	return "/quiz?" + q.Encode()
}
