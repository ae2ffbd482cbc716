// Package render turns computed view data into charts, tables and spreadsheets.
// The estimator, leaderboard and recommender never import it.
package render

import (
	"io"

	"speechbench/internal/app/estimator"
	"speechbench/internal/app/leaderboard"
)

// Point is one labelled value of a series
type Point struct {
	Label string
	Value float64
}

// DataSeries is a named list of points, e.g. one bar group of a chart
type DataSeries struct {
	Label  string
	Points []Point
}

// Renderer draws fully computed series; it performs no computation of its own
type Renderer interface {
	Render(w io.Writer, series []DataSeries) error
}

// CostSeries converts an estimate into the standard and outlier bar groups.
// The outlier series is omitted when empty.
func CostSeries(r estimator.Result) []DataSeries {
	series := []DataSeries{{Label: "Pay-As-You-Go Models", Points: costPoints(r.Standard)}}
	if len(r.Outliers) > 0 {
		series = append(series, DataSeries{Label: "Subscription / High Volume Models", Points: costPoints(r.Outliers)})
	}
	return series
}

func costPoints(estimates []estimator.Estimate) []Point {
	points := make([]Point, len(estimates))
	for i, e := range estimates {
		points[i] = Point{Label: e.Name, Value: e.Cost}
	}
	return points
}

// LeaderboardSeries splits leaderboard entries into one series per benchmark
// dimension, each with a point per provider in rank order
func LeaderboardSeries(entries []leaderboard.Entry) []DataSeries {
	dims := []struct {
		label string
		value func(leaderboard.Entry) float64
	}{
		{"Quality", func(e leaderboard.Entry) float64 { return e.Quality }},
		{"Speed", func(e leaderboard.Entry) float64 { return e.Speed }},
		{"Features", func(e leaderboard.Entry) float64 { return e.Features }},
		{"Price", func(e leaderboard.Entry) float64 { return e.Price }},
	}

	series := make([]DataSeries, len(dims))
	for i, d := range dims {
		series[i].Label = d.label
		series[i].Points = make([]Point, len(entries))
		for j, e := range entries {
			series[i].Points[j] = Point{Label: e.Name, Value: d.value(e)}
		}
	}
	return series
}
