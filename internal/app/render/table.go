package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"speechbench/internal/app/compare"
	"speechbench/internal/app/leaderboard"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// MatrixTable renders the comparison matrix with one column per provider and
// one row per attribute, mirroring the web comparison page
func MatrixTable(w io.Writer, m compare.Matrix) error {
	if len(m.Rows) == 0 {
		_, err := fmt.Fprintf(w, "No providers match modality %s\n", m.Modality)
		return err
	}

	headers := []string{"Feature"}
	for _, r := range m.Rows {
		headers = append(headers, r.Name)
	}

	attrs := []struct {
		label string
		value func(compare.Row) string
	}{
		{"Type", func(r compare.Row) string { return r.Modality }},
		{"Pricing", func(r compare.Row) string { return strings.Join(r.Tiers, "\n") }},
		{"Quality", func(r compare.Row) string { return r.QualityStars }},
		{"Speed", func(r compare.Row) string { return r.SpeedStars }},
		{"Languages", func(r compare.Row) string { return strconv.Itoa(r.LanguageCount) + "+" }},
		{"Key Features", func(r compare.Row) string { return "• " + strings.Join(r.Features, "\n• ") }},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, a := range attrs {
		cells := []string{a.label}
		for _, r := range m.Rows {
			cells = append(cells, a.value(r))
		}
		t.Row(cells...)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// LeaderboardTable renders ranked entries with a column per benchmark
func LeaderboardTable(w io.Writer, entries []leaderboard.Entry) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Provider", "Quality", "Speed", "Features", "Price", "Total").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range entries {
		t.Row(
			strconv.Itoa(e.Rank),
			e.Name,
			Score(e.Quality),
			Score(e.Speed),
			Score(e.Features),
			Score(e.Price),
			Score(e.Total),
		)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
