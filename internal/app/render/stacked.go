package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StackedBars draws one row per point label with a segment per series,
// the terminal counterpart of a stacked area chart
type StackedBars struct {
	// CellsPerUnit is how many characters one score point occupies
	CellsPerUnit int

	segmentStyles []lipgloss.Style
	legendStyle   lipgloss.Style
}

// NewStackedBars creates a stacked bar renderer
func NewStackedBars(cellsPerUnit int) *StackedBars {
	if cellsPerUnit <= 0 {
		cellsPerUnit = 2
	}
	return &StackedBars{
		CellsPerUnit: cellsPerUnit,
		segmentStyles: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706")),
		},
		legendStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Render implements Renderer. All series must share the same point labels in the same order.
func (s *StackedBars) Render(w io.Writer, series []DataSeries) error {
	if len(series) == 0 {
		return nil
	}
	rows := len(series[0].Points)
	for _, ds := range series[1:] {
		if len(ds.Points) != rows {
			return fmt.Errorf("series %q has %d points, want %d", ds.Label, len(ds.Points), rows)
		}
	}

	labelWidth := 0
	for _, p := range series[0].Points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}

	var sb strings.Builder
	legend := make([]string, len(series))
	for i, ds := range series {
		legend[i] = s.style(i).Render("■") + " " + ds.Label
	}
	sb.WriteString(s.legendStyle.Render(strings.Join(legend, "  ")))
	sb.WriteString("\n")

	for r := 0; r < rows; r++ {
		total := 0.0
		var bar strings.Builder
		for i, ds := range series {
			v := ds.Points[r].Value
			total += v
			bar.WriteString(s.style(i).Render(strings.Repeat("█", int(v*float64(s.CellsPerUnit)+0.5))))
		}
		fmt.Fprintf(&sb, "%2d. %s %s %s\n", r+1, padRight(series[0].Points[r].Label, labelWidth), bar.String(), Score(total))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (s *StackedBars) style(i int) lipgloss.Style {
	return s.segmentStyles[i%len(s.segmentStyles)]
}
