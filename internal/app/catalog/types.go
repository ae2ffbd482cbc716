package catalog

import (
	"fmt"
	"strings"

	apperrors "speechbench/internal/app/errors"
)

// Modality tells which speech direction a provider offers
type Modality string

const (
	ModalityTTS  Modality = "TTS"
	ModalitySTT  Modality = "STT"
	ModalityBoth Modality = "BOTH"
)

// ParseModality normalizes a user supplied modality string
func ParseModality(s string) (Modality, error) {
	switch m := Modality(strings.ToUpper(strings.TrimSpace(s))); m {
	case ModalityTTS, ModalitySTT, ModalityBoth:
		return m, nil
	default:
		return "", apperrors.InvalidField("modality", fmt.Sprintf("unknown modality %q", s))
	}
}

// Valid reports whether m is one of the declared modalities
func (m Modality) Valid() bool {
	return m == ModalityTTS || m == ModalitySTT || m == ModalityBoth
}

// Serves reports whether a provider with modality m can be used for the selection
func (m Modality) Serves(selection Modality) bool {
	return m == selection || m == ModalityBoth
}

// UnitType is the billing unit of a pricing tier
type UnitType string

const (
	UnitCharacters UnitType = "characters"
	UnitMinutes    UnitType = "minutes"
	UnitSeconds    UnitType = "seconds"
	UnitTokens     UnitType = "tokens"
)

// Valid reports whether u is one of the declared unit types
func (u UnitType) Valid() bool {
	switch u {
	case UnitCharacters, UnitMinutes, UnitSeconds, UnitTokens:
		return true
	}
	return false
}

// PricingTier is one published price point of a provider
type PricingTier struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	UnitPrice   float64  `yaml:"unit_price" json:"unit_price" validate:"gte=0"`
	UnitSize    float64  `yaml:"unit_size" json:"unit_size" validate:"gt=0"`
	UnitType    UnitType `yaml:"unit_type" json:"unit_type" validate:"required,oneof=characters minutes seconds tokens"`
	Description string   `yaml:"description" json:"description"`
}

// IsSubscription reports whether the tier is sold as a flat subscription
func (t PricingTier) IsSubscription() bool {
	return strings.Contains(strings.ToLower(t.Description), "subscription")
}

// String renders the tier as "$price / size unit"
func (t PricingTier) String() string {
	return fmt.Sprintf("$%g / %g %s", t.UnitPrice, t.UnitSize, t.UnitType)
}

// Benchmarks holds the four independent scores, conventionally 0-5 but not
// range checked. Higher is better for all of them, including PriceScore
// (cheapness) and Speed (a rating, not latency).
type Benchmarks struct {
	Quality    float64 `yaml:"quality" json:"quality"`
	Speed      float64 `yaml:"speed" json:"speed"`
	PriceScore float64 `yaml:"price_score" json:"price_score"`
	Features   float64 `yaml:"features" json:"features"`
}

// Total is the composite value score used by the leaderboard
func (b Benchmarks) Total() float64 {
	return b.Quality + b.Speed + b.Features + b.PriceScore
}

// Provider is a single vendor record of the catalog
type Provider struct {
	ID            string        `yaml:"id" json:"id" validate:"required"`
	Name          string        `yaml:"name" json:"name" validate:"required"`
	Description   string        `yaml:"description" json:"description"`
	Website       string        `yaml:"website" json:"website" validate:"omitempty,url"`
	Modality      Modality      `yaml:"modality" json:"modality" validate:"required,oneof=TTS STT BOTH"`
	PricingTiers  []PricingTier `yaml:"pricing_tiers" json:"pricing_tiers" validate:"required,min=1,dive"`
	Benchmarks    Benchmarks    `yaml:"benchmarks" json:"benchmarks"`
	Features      []string      `yaml:"features" json:"features"`
	LanguageCount int           `yaml:"language_count" json:"language_count" validate:"gt=0"`
	BestFor       []string      `yaml:"best_for" json:"best_for"`
}

// PrimaryTier returns the first pricing tier, which stands for the provider in cost estimates
func (p Provider) PrimaryTier() PricingTier {
	return p.PricingTiers[0]
}

// HasTag reports whether the provider lists tag among its best-for use cases
func (p Provider) HasTag(tag string) bool {
	for _, t := range p.BestFor {
		if t == tag {
			return true
		}
	}
	return false
}

// clone returns a deep copy so callers can't reach into catalog storage
func (p Provider) clone() Provider {
	c := p
	c.PricingTiers = append([]PricingTier(nil), p.PricingTiers...)
	c.Features = append([]string(nil), p.Features...)
	c.BestFor = append([]string(nil), p.BestFor...)
	return c
}
