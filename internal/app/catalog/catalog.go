// Package catalog holds the immutable provider dataset every view reads from.
package catalog

import (
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	apperrors "speechbench/internal/app/errors"
)

// Catalog is a read-only, ordered collection of providers.
// It is built once and shared by reference; nothing mutates it after New returns.
type Catalog struct {
	providers []Provider
	index     map[string]int
	version   string
}

var validate = validator.New()

// New validates the records and builds a catalog preserving declaration order
func New(version string, providers []Provider) (*Catalog, error) {
	c := &Catalog{
		providers: make([]Provider, 0, len(providers)),
		index:     make(map[string]int, len(providers)),
		version:   version,
	}

	for i, p := range providers {
		if err := validateProvider(p); err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrInvalidCatalog, "provider #%d (%s): %v", i, p.ID, err)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, apperrors.Wrapf(apperrors.ErrDuplicateID, "provider id %q", p.ID)
		}
		c.index[p.ID] = len(c.providers)
		c.providers = append(c.providers, p.clone())
	}

	return c, nil
}

func validateProvider(p Provider) error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !p.Modality.Valid() {
		return apperrors.InvalidField("modality", string(p.Modality))
	}
	for _, t := range p.PricingTiers {
		if !t.UnitType.Valid() {
			return apperrors.InvalidField("unit_type", string(t.UnitType))
		}
	}
	return nil
}

// Version identifies the dataset revision
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of providers
func (c *Catalog) Len() int {
	return len(c.providers)
}

// All returns every provider in declaration order
func (c *Catalog) All() []Provider {
	return lo.Map(c.providers, func(p Provider, _ int) Provider {
		return p.clone()
	})
}

// Get looks up a provider by id
func (c *Catalog) Get(id string) (Provider, bool) {
	i, ok := c.index[id]
	if !ok {
		return Provider{}, false
	}
	return c.providers[i].clone(), true
}

// ByModality returns providers whose modality equals m. With includeBoth,
// providers offering both directions are kept as well.
func (c *Catalog) ByModality(m Modality, includeBoth bool) []Provider {
	filtered := lo.Filter(c.providers, func(p Provider, _ int) bool {
		if includeBoth {
			return p.Modality.Serves(m)
		}
		return p.Modality == m
	})
	return lo.Map(filtered, func(p Provider, _ int) Provider {
		return p.clone()
	})
}
