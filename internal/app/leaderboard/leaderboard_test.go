package leaderboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speechbench/internal/app/catalog"
)

func TestRank_DefaultCatalog(t *testing.T) {
	entries := Rank(catalog.Default(), 0)
	require.Len(t, entries, 9)

	var order []string
	for i, e := range entries {
		order = append(order, e.ProviderID)
		assert.Equal(t, i+1, e.Rank)
		assert.InDelta(t, e.Quality+e.Speed+e.Features+e.Price, e.Total, 1e-9)
	}
	assert.Equal(t, []string{
		"deepgram", "azure", "cartesia", "assemblyai", "elevenlabs",
		"kokoro", "google", "openai", "playht",
	}, order)
	assert.InDelta(t, 17.5, entries[0].Total, 1e-9)
}

func TestRank_Limit(t *testing.T) {
	c := catalog.Default()

	assert.Len(t, Rank(c, 3), 3)
	assert.Len(t, Rank(c, 50), 9)

	// a catalog larger than the cap is truncated to ten
	var providers []catalog.Provider
	for i := 0; i < 14; i++ {
		providers = append(providers, catalog.Provider{
			ID: fmt.Sprintf("p%02d", i), Name: fmt.Sprintf("P%d", i),
			Modality: catalog.ModalityTTS, LanguageCount: 1,
			PricingTiers: []catalog.PricingTier{{Name: "t", UnitPrice: 1, UnitSize: 1, UnitType: catalog.UnitMinutes}},
			Benchmarks:   catalog.Benchmarks{Quality: float64(i % 5)},
		})
	}
	big, err := catalog.New("big", providers)
	require.NoError(t, err)

	entries := Rank(big, 0)
	require.Len(t, entries, DefaultLimit)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Total, entries[i].Total)
	}
	// ties keep catalog order: p04 and p09 both score 4
	assert.Equal(t, "p04", entries[0].ProviderID)
	assert.Equal(t, "p09", entries[1].ProviderID)
}
