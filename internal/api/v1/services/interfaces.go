package services

import (
	"context"
	"io"

	"speechbench/internal/api/v1/dto"
)

// ProviderService defines the interface for catalog lookups
type ProviderService interface {
	ListProviders(ctx context.Context, query dto.ListProvidersQuery) (*dto.ProviderListResponse, error)
	GetProvider(ctx context.Context, id string) (*dto.ProviderResponse, error)
}

// LeaderboardService defines the interface for the composite score ranking
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, query dto.LeaderboardQuery) (*dto.LeaderboardResponse, error)
}

// ComparisonService defines the interface for the comparison matrix
type ComparisonService interface {
	Compare(ctx context.Context, query dto.CompareQuery) (*dto.CompareResponse, error)
}

// CostService defines the interface for the cost calculator
type CostService interface {
	Estimate(ctx context.Context, query dto.EstimateQuery) (*dto.EstimateResponse, error)
}

// RecommendationService defines the interface for the quiz
type RecommendationService interface {
	GetQuiz(ctx context.Context) (*dto.QuizResponse, error)
	Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	ExportComparison(ctx context.Context, req dto.ExportRequest, writer io.Writer) error
}
