// Package compare builds the side-by-side provider comparison matrix.
package compare

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"speechbench/internal/app/catalog"
	apperrors "speechbench/internal/app/errors"
)

// ModalityFilter selects which rows the matrix shows
type ModalityFilter string

const (
	FilterAll ModalityFilter = "ALL"
	FilterTTS ModalityFilter = "TTS"
	FilterSTT ModalityFilter = "STT"
)

const maxStars = 5

// ParseFilter normalizes a modality filter; empty means ALL
func ParseFilter(s string) (ModalityFilter, error) {
	switch f := ModalityFilter(strings.ToUpper(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterTTS, FilterSTT:
		return f, nil
	default:
		return "", apperrors.InvalidField("modality", s)
	}
}

// Filter controls matrix construction
type Filter struct {
	Modality ModalityFilter
	// DifferencesOnly is carried through to the view; rows are not diffed.
	DifferencesOnly bool
}

// Row is one provider column of the comparison table
type Row struct {
	ProviderID    string   `json:"provider_id"`
	Name          string   `json:"name"`
	Modality      string   `json:"modality"`
	Website       string   `json:"website,omitempty"`
	Tiers         []string `json:"tiers"`
	Quality       float64  `json:"quality"`
	QualityStars  string   `json:"quality_stars"`
	Speed         float64  `json:"speed"`
	SpeedStars    string   `json:"speed_stars"`
	Features      []string `json:"features"`
	LanguageCount int      `json:"language_count"`
}

// Matrix is the rendered comparison
type Matrix struct {
	Modality        ModalityFilter `json:"modality"`
	DifferencesOnly bool           `json:"differences_only"`
	Rows            []Row          `json:"rows"`
}

// Build filters the catalog and lays out one row per surviving provider.
// TTS and STT match the provider modality exactly; BOTH providers only show under ALL.
func Build(c *catalog.Catalog, f Filter) Matrix {
	if f.Modality == "" {
		f.Modality = FilterAll
	}

	var providers []catalog.Provider
	if f.Modality == FilterAll {
		providers = c.All()
	} else {
		providers = c.ByModality(catalog.Modality(f.Modality), false)
	}

	return Matrix{
		Modality:        f.Modality,
		DifferencesOnly: f.DifferencesOnly,
		Rows:            lo.Map(providers, func(p catalog.Provider, _ int) Row { return toRow(p) }),
	}
}

func toRow(p catalog.Provider) Row {
	return Row{
		ProviderID:    p.ID,
		Name:          p.Name,
		Modality:      string(p.Modality),
		Website:       p.Website,
		Tiers:         lo.Map(p.PricingTiers, func(t catalog.PricingTier, _ int) string { return tierLabel(t) }),
		Quality:       p.Benchmarks.Quality,
		QualityStars:  Stars(p.Benchmarks.Quality),
		Speed:         p.Benchmarks.Speed,
		SpeedStars:    Stars(p.Benchmarks.Speed),
		Features:      p.Features,
		LanguageCount: p.LanguageCount,
	}
}

func tierLabel(t catalog.PricingTier) string {
	if t.Description == "" {
		return t.Name + ": " + t.String()
	}
	return t.Name + ": " + t.Description
}

// Stars renders a 0-5 score as five pips; any fraction of a point fills a pip
func Stars(score float64) string {
	n := int(math.Ceil(score))
	if n < 0 {
		n = 0
	}
	if n > maxStars {
		n = maxStars
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}
