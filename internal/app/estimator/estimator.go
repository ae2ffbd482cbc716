// Package estimator projects monthly spend per provider for a given audio volume.
package estimator

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"speechbench/internal/app/catalog"
	apperrors "speechbench/internal/app/errors"
)

const (
	// CharsPerAudioHour approximates how much text one hour of speech carries
	CharsPerAudioHour = 15000

	// MinHours and MaxHours bound the monthly volume a caller may ask about
	MinHours = 1
	MaxHours = 1000

	DefaultOutlierID        = "playht"
	DefaultOutlierThreshold = 20000.0
)

var (
	ErrInvalidHours    = apperrors.New("monthly audio hours out of range")
	ErrInvalidModality = apperrors.New("modality must be TTS or STT")
	ErrUnsupportedUnit = apperrors.New("pricing unit not supported for modality")
)

// Estimate is the projected monthly cost of one provider
type Estimate struct {
	ProviderID     string  `json:"provider_id"`
	Name           string  `json:"name"`
	Tier           string  `json:"tier"`
	Cost           float64 `json:"cost"`
	IsSubscription bool    `json:"is_subscription"`
	Unpriced       bool    `json:"unpriced,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}

// Result splits estimates into the standard chart and the outlier group.
// Every provider serving the modality appears in exactly one of the two.
type Result struct {
	Hours    float64          `json:"hours"`
	Modality catalog.Modality `json:"modality"`
	Standard []Estimate       `json:"standard"`
	Outliers []Estimate       `json:"outliers"`
}

// All returns standard estimates followed by outliers
func (r Result) All() []Estimate {
	all := make([]Estimate, 0, len(r.Standard)+len(r.Outliers))
	all = append(all, r.Standard...)
	return append(all, r.Outliers...)
}

// Estimator computes cost projections over a catalog
type Estimator struct {
	catalog          *catalog.Catalog
	outlierID        string
	outlierThreshold float64
	strictUnits      bool
	logger           *zap.Logger
}

// Option configures an Estimator
type Option func(*Estimator)

// WithOutlierID sets the provider id that is always placed in the outlier group
func WithOutlierID(id string) Option {
	return func(e *Estimator) { e.outlierID = id }
}

// WithOutlierThreshold sets the cost above which a provider becomes an outlier
func WithOutlierThreshold(threshold float64) Option {
	return func(e *Estimator) { e.outlierThreshold = threshold }
}

// WithStrictUnits makes Estimate fail on a tier whose unit can't be costed
// instead of reporting it at zero
func WithStrictUnits() Option {
	return func(e *Estimator) { e.strictUnits = true }
}

// WithLogger sets the logger used for unpriced warnings
func WithLogger(logger *zap.Logger) Option {
	return func(e *Estimator) { e.logger = logger }
}

// New creates an estimator over c
func New(c *catalog.Catalog, opts ...Option) *Estimator {
	e := &Estimator{
		catalog:          c,
		outlierID:        DefaultOutlierID,
		outlierThreshold: DefaultOutlierThreshold,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate projects the monthly cost of every provider serving modality
func (e *Estimator) Estimate(hours float64, modality catalog.Modality) (Result, error) {
	if math.IsNaN(hours) || hours < MinHours || hours > MaxHours {
		// same message as ErrInvalidHours, so errors.Is matches it
		return Result{}, apperrors.Wrap(apperrors.OutOfRange("hours", MinHours, MaxHours), ErrInvalidHours.Error())
	}
	if modality != catalog.ModalityTTS && modality != catalog.ModalitySTT {
		return Result{}, apperrors.Wrapf(ErrInvalidModality, "got %q", modality)
	}

	result := Result{
		Hours:    hours,
		Modality: modality,
		Standard: []Estimate{},
		Outliers: []Estimate{},
	}

	for _, p := range e.catalog.ByModality(modality, true) {
		tier := p.PrimaryTier()
		cost, ok := TierCost(tier, hours, modality)

		est := Estimate{
			ProviderID:     p.ID,
			Name:           p.Name,
			Tier:           tier.Name,
			Cost:           Round2(cost),
			IsSubscription: tier.IsSubscription(),
		}
		if !ok {
			if e.strictUnits {
				return Result{}, apperrors.Wrapf(ErrUnsupportedUnit, "%s prices %s for %s", p.ID, tier.UnitType, modality)
			}
			est.Unpriced = true
			est.Reason = fmt.Sprintf("%s pricing is not convertible for %s", tier.UnitType, modality)
			e.logger.Warn("provider tier could not be costed",
				zap.String("provider", p.ID),
				zap.String("tier", tier.Name),
				zap.String("unit_type", string(tier.UnitType)),
				zap.String("modality", string(modality)),
			)
		}

		if e.isOutlier(est) {
			result.Outliers = append(result.Outliers, est)
		} else {
			result.Standard = append(result.Standard, est)
		}
	}

	sort.SliceStable(result.Standard, func(i, j int) bool {
		return result.Standard[i].Cost < result.Standard[j].Cost
	})

	return result, nil
}

func (e *Estimator) isOutlier(est Estimate) bool {
	return est.ProviderID == e.outlierID || est.Cost > e.outlierThreshold
}

// TierCost converts a monthly audio volume into the tier's billing units.
// ok is false when the tier's unit type has no conversion for the modality;
// cost is then zero.
func TierCost(tier catalog.PricingTier, hours float64, modality catalog.Modality) (cost float64, ok bool) {
	switch modality {
	case catalog.ModalityTTS:
		switch tier.UnitType {
		case catalog.UnitCharacters:
			return hours * CharsPerAudioHour / tier.UnitSize * tier.UnitPrice, true
		case catalog.UnitSeconds:
			return hours * 3600 / tier.UnitSize * tier.UnitPrice, true
		case catalog.UnitMinutes:
			return hours * 60 / tier.UnitSize * tier.UnitPrice, true
		}
	case catalog.ModalitySTT:
		minutes := hours * 60
		switch tier.UnitType {
		case catalog.UnitMinutes:
			return minutes / tier.UnitSize * tier.UnitPrice, true
		case catalog.UnitSeconds:
			return minutes * 60 / tier.UnitSize * tier.UnitPrice, true
		}
	}
	return 0, false
}

// Round2 rounds to cents, half away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
