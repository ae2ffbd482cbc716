package render

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"speechbench/internal/app/catalog"
	"speechbench/internal/app/compare"
	"speechbench/internal/app/estimator"
	"speechbench/internal/app/leaderboard"
)

func TestCostSeries(t *testing.T) {
	result, err := estimator.New(catalog.Default()).Estimate(10, catalog.ModalityTTS)
	require.NoError(t, err)

	series := CostSeries(result)
	require.Len(t, series, 2)
	assert.Equal(t, "Pay-As-You-Go Models", series[0].Label)
	assert.Len(t, series[0].Points, len(result.Standard))
	assert.Equal(t, "Subscription / High Volume Models", series[1].Label)
	assert.Equal(t, Point{Label: "PlayHT", Value: 23400}, series[1].Points[0])
}

func TestCostSeries_NoOutliers(t *testing.T) {
	result := estimator.Result{
		Standard: []estimator.Estimate{{Name: "A", Cost: 1}},
	}
	series := CostSeries(result)
	require.Len(t, series, 1)
	assert.Equal(t, []Point{{Label: "A", Value: 1}}, series[0].Points)
}

func TestLeaderboardSeries(t *testing.T) {
	entries := leaderboard.Rank(catalog.Default(), 3)
	series := LeaderboardSeries(entries)

	require.Len(t, series, 4)
	labels := []string{series[0].Label, series[1].Label, series[2].Label, series[3].Label}
	assert.Equal(t, []string{"Quality", "Speed", "Features", "Price"}, labels)
	for _, s := range series {
		require.Len(t, s.Points, 3)
		assert.Equal(t, entries[0].Name, s.Points[0].Label)
	}
	assert.Equal(t, entries[1].Speed, series[1].Points[1].Value)
}

func TestCurrency(t *testing.T) {
	tests := map[float64]string{
		0:        "$0.00",
		2.25:     "$2.25",
		23400:    "$23,400.00",
		1234.567: "$1,234.57",
	}
	for v, expected := range tests {
		assert.Equal(t, expected, Currency(v))
	}
}

func TestBarChart_Render(t *testing.T) {
	series := []DataSeries{
		{Label: "Cheap", Points: []Point{{"A", 10}, {"Bee", 5}, {"C", 0}}},
		{Label: "Empty"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewBarChart(10, nil).Render(&buf, series))
	out := buf.String()

	assert.Contains(t, out, "CHEAP")
	assert.Contains(t, out, strings.Repeat("█", 10)+" $10.00")
	assert.Contains(t, out, strings.Repeat("█", 5)+" $5.00")
	assert.NotContains(t, out, strings.Repeat("█", 11))
	assert.Contains(t, out, "(no providers)")
}

func TestBarLength(t *testing.T) {
	assert.Equal(t, 0, barLength(0, 10, 40))
	assert.Equal(t, 0, barLength(5, 0, 40))
	assert.Equal(t, 1, barLength(0.001, 23400, 40), "tiny values stay visible")
	assert.Equal(t, 40, barLength(23400, 23400, 40))
}

func TestStackedBars_Render(t *testing.T) {
	entries := leaderboard.Rank(catalog.Default(), 2)

	var buf bytes.Buffer
	require.NoError(t, NewStackedBars(1).Render(&buf, LeaderboardSeries(entries)))
	out := buf.String()

	assert.Contains(t, out, "Quality")
	assert.Contains(t, out, " 1. "+entries[0].Name)
	assert.Contains(t, out, Score(entries[0].Total))
}

func TestStackedBars_MismatchedSeries(t *testing.T) {
	series := []DataSeries{
		{Label: "a", Points: []Point{{"x", 1}}},
		{Label: "b"},
	}
	err := NewStackedBars(1).Render(&bytes.Buffer{}, series)
	assert.Error(t, err)
}

func TestMatrixTable(t *testing.T) {
	m := compare.Build(catalog.Default(), compare.Filter{Modality: compare.FilterSTT})

	var buf bytes.Buffer
	require.NoError(t, MatrixTable(&buf, m))
	out := buf.String()

	assert.Contains(t, out, "Deepgram")
	assert.Contains(t, out, "AssemblyAI")
	assert.Contains(t, out, "Key Features")
	assert.NotContains(t, out, "ElevenLabs")
}

func TestMatrixTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MatrixTable(&buf, compare.Matrix{Modality: compare.FilterTTS}))
	assert.Equal(t, "No providers match modality TTS\n", buf.String())
}

func TestLeaderboardTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LeaderboardTable(&buf, leaderboard.Rank(catalog.Default(), 10)))
	out := buf.String()

	assert.Contains(t, out, "Provider")
	assert.Contains(t, out, "Deepgram")
	assert.Contains(t, out, "PlayHT")
}

func TestExportMatrix(t *testing.T) {
	m := compare.Build(catalog.Default(), compare.Filter{})

	var buf bytes.Buffer
	require.NoError(t, ExportMatrix(&buf, m))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet, ok := file.Sheet[MatrixSheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, len(m.Rows)+1)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "elevenlabs", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "ElevenLabs", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "TTS", sheet.Rows[1].Cells[2].Value)
}

func TestSaveMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.xlsx")
	m := compare.Build(catalog.Default(), compare.Filter{Modality: compare.FilterTTS})

	require.NoError(t, SaveMatrix(path, m))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Sheet[MatrixSheetName].Rows, 5)
}
