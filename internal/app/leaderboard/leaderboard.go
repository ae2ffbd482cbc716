// Package leaderboard ranks providers by their composite benchmark score.
package leaderboard

import (
	"sort"

	"github.com/samber/lo"

	"speechbench/internal/app/catalog"
)

// DefaultLimit caps the leaderboard length
const DefaultLimit = 10

// Entry is one leaderboard row with the per-dimension breakdown kept for stacked charts
type Entry struct {
	Rank       int     `json:"rank"`
	ProviderID string  `json:"provider_id"`
	Name       string  `json:"name"`
	Quality    float64 `json:"quality"`
	Speed      float64 `json:"speed"`
	Features   float64 `json:"features"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
}

// Rank sorts providers by total score, highest first, and keeps at most limit.
// limit <= 0 or above DefaultLimit falls back to DefaultLimit.
func Rank(c *catalog.Catalog, limit int) []Entry {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	entries := lo.Map(c.All(), func(p catalog.Provider, _ int) Entry {
		b := p.Benchmarks
		return Entry{
			ProviderID: p.ID,
			Name:       p.Name,
			Quality:    b.Quality,
			Speed:      b.Speed,
			Features:   b.Features,
			Price:      b.PriceScore,
			Total:      b.Total(),
		}
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
