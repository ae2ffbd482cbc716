package dto

import (
	"speechbench/internal/app/catalog"
	apperrors "speechbench/internal/app/errors"
)

// ListProvidersQuery filters the provider listing
type ListProvidersQuery struct {
	// Modality keeps providers serving TTS or STT (BOTH included); empty lists everything
	Modality string `form:"modality"`
}

// Validate checks the modality value
func (q ListProvidersQuery) Validate() error {
	if q.Modality == "" {
		return nil
	}
	if _, err := catalog.ParseModality(q.Modality); err != nil {
		return apperrors.InvalidField("modality", q.Modality)
	}
	return nil
}

// PricingTierResponse represents a pricing tier in API responses
type PricingTierResponse struct {
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	UnitSize       float64 `json:"unit_size"`
	UnitType       string  `json:"unit_type"`
	Description    string  `json:"description"`
	IsSubscription bool    `json:"is_subscription"`
}

// BenchmarksResponse represents benchmark scores in API responses
type BenchmarksResponse struct {
	Quality    float64 `json:"quality"`
	Speed      float64 `json:"speed"`
	PriceScore float64 `json:"price_score"`
	Features   float64 `json:"features"`
	Total      float64 `json:"total"`
}

// ProviderResponse represents a provider in API responses
type ProviderResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Website       string                `json:"website,omitempty"`
	Modality      string                `json:"modality"`
	PricingTiers  []PricingTierResponse `json:"pricing_tiers"`
	Benchmarks    BenchmarksResponse    `json:"benchmarks"`
	Features      []string              `json:"features"`
	LanguageCount int                   `json:"language_count"`
	BestFor       []string              `json:"best_for"`
}

// ProviderListResponse wraps a provider listing
type ProviderListResponse struct {
	CatalogVersion string             `json:"catalog_version"`
	Providers      []ProviderResponse `json:"providers"`
}

// ToProviderResponse converts a catalog provider to its response DTO
func ToProviderResponse(p catalog.Provider) ProviderResponse {
	tiers := make([]PricingTierResponse, len(p.PricingTiers))
	for i, t := range p.PricingTiers {
		tiers[i] = PricingTierResponse{
			Name:           t.Name,
			UnitPrice:      t.UnitPrice,
			UnitSize:       t.UnitSize,
			UnitType:       string(t.UnitType),
			Description:    t.Description,
			IsSubscription: t.IsSubscription(),
		}
	}

	return ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Website:      p.Website,
		Modality:     string(p.Modality),
		PricingTiers: tiers,
		Benchmarks: BenchmarksResponse{
			Quality:    p.Benchmarks.Quality,
			Speed:      p.Benchmarks.Speed,
			PriceScore: p.Benchmarks.PriceScore,
			Features:   p.Benchmarks.Features,
			Total:      p.Benchmarks.Total(),
		},
		Features:      p.Features,
		LanguageCount: p.LanguageCount,
		BestFor:       p.BestFor,
	}
}
