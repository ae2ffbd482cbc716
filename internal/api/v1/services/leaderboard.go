package services

import (
	"context"

	"speechbench/internal/api/v1/dto"
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/leaderboard"
)

// LeaderboardServiceImpl implements LeaderboardService
type LeaderboardServiceImpl struct {
	catalog      *catalog.Catalog
	defaultLimit int
}

// NewLeaderboardService creates a leaderboard service; defaultLimit applies when the query sets none
func NewLeaderboardService(c *catalog.Catalog, defaultLimit int) LeaderboardService {
	return &LeaderboardServiceImpl{
		catalog:      c,
		defaultLimit: defaultLimit,
	}
}

// GetLeaderboard ranks the catalog by composite score
func (s *LeaderboardServiceImpl) GetLeaderboard(ctx context.Context, query dto.LeaderboardQuery) (*dto.LeaderboardResponse, error) {
	limit := query.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	return &dto.LeaderboardResponse{
		CatalogVersion: s.catalog.Version(),
		Entries:        leaderboard.Rank(s.catalog, limit),
	}, nil
}
