package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"speechbench/internal/app/catalog"
)

// TestProvider builds a minimal valid provider with mid-range scores
func TestProvider(id string, modality catalog.Modality) catalog.Provider {
	unit := catalog.UnitCharacters
	if modality == catalog.ModalitySTT {
		unit = catalog.UnitMinutes
	}
	return catalog.Provider{
		ID:          id,
		Name:        "Provider " + id,
		Description: "Fixture provider " + id,
		Modality:    modality,
		PricingTiers: []catalog.PricingTier{
			{Name: "Standard", UnitPrice: 1, UnitSize: 1000, UnitType: unit, Description: "$1 per 1k units"},
		},
		Benchmarks: catalog.Benchmarks{
			Quality:    3,
			Speed:      3,
			PriceScore: 3,
			Features:   3,
		},
		Features:      []string{"Fixture"},
		LanguageCount: 1,
	}
}

// NewTestCatalog builds a catalog and fails the test if the data is invalid
func NewTestCatalog(t *testing.T, providers ...catalog.Provider) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("test", providers)
	require.NoError(t, err)
	return c
}

// WriteCatalogFile encodes c as YAML into a temp dir and returns the path
func WriteCatalogFile(t *testing.T, c *catalog.Catalog) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, catalog.Encode(f, c))
	return path
}

// WriteFile writes content into a temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
