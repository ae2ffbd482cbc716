package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarChart draws each series as a titled group of horizontal bars.
// Bars are scaled per series so a huge outlier doesn't flatten the rest.
type BarChart struct {
	Width  int
	Format func(float64) string

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	barStyles  []lipgloss.Style
}

// NewBarChart creates a chart whose longest bar spans width cells
func NewBarChart(width int, format func(float64) string) *BarChart {
	if width <= 0 {
		width = 40
	}
	if format == nil {
		format = Currency
	}
	return &BarChart{
		Width:      width,
		Format:     format,
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		labelStyle: lipgloss.NewStyle().Bold(true),
		barStyles: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
	}
}

// Render implements Renderer
func (b *BarChart) Render(w io.Writer, series []DataSeries) error {
	labelWidth := 0
	for _, s := range series {
		for _, p := range s.Points {
			labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		}
	}

	var sb strings.Builder
	for i, s := range series {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(b.titleStyle.Render(strings.ToUpper(s.Label)))
		sb.WriteString("\n")

		if len(s.Points) == 0 {
			sb.WriteString("  (no providers)\n")
			continue
		}

		peak := 0.0
		for _, p := range s.Points {
			peak = math.Max(peak, p.Value)
		}
		style := b.barStyles[i%len(b.barStyles)]

		for _, p := range s.Points {
			label := b.labelStyle.Render(padRight(p.Label, labelWidth))
			bar := style.Render(strings.Repeat("█", barLength(p.Value, peak, b.Width)))
			fmt.Fprintf(&sb, "  %s %s %s\n", label, bar, b.Format(p.Value))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func barLength(v, peak float64, width int) int {
	if peak <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / peak * float64(width)))
	if n == 0 {
		n = 1
	}
	return n
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
