package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"speechbench/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	ProviderService       *MockProviderService
	LeaderboardService    *MockLeaderboardService
	ComparisonService     *MockComparisonService
	CostService           *MockCostService
	RecommendationService *MockRecommendationService
	ExportService         *MockExportService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		ProviderService:       NewMockProviderService(t),
		LeaderboardService:    NewMockLeaderboardService(t),
		ComparisonService:     NewMockComparisonService(t),
		CostService:           NewMockCostService(t),
		RecommendationService: NewMockRecommendationService(t),
		ExportService:         NewMockExportService(t),
	}
}

// AssertExpectations checks every mock's expectations
func (ms *MockServices) AssertExpectations(t *testing.T) {
	ms.ProviderService.AssertExpectations(t)
	ms.LeaderboardService.AssertExpectations(t)
	ms.ComparisonService.AssertExpectations(t)
	ms.CostService.AssertExpectations(t)
	ms.RecommendationService.AssertExpectations(t)
	ms.ExportService.AssertExpectations(t)
}

// MockProviderService is a mock implementation of ProviderService
type MockProviderService struct {
	mock.Mock
}

func NewMockProviderService(t *testing.T) *MockProviderService {
	m := &MockProviderService{}
	m.Test(t)
	return m
}

func (m *MockProviderService) ListProviders(ctx context.Context, query dto.ListProvidersQuery) (*dto.ProviderListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderListResponse), args.Error(1)
}

func (m *MockProviderService) GetProvider(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderResponse), args.Error(1)
}

// MockLeaderboardService is a mock implementation of LeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func NewMockLeaderboardService(t *testing.T) *MockLeaderboardService {
	m := &MockLeaderboardService{}
	m.Test(t)
	return m
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, query dto.LeaderboardQuery) (*dto.LeaderboardResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LeaderboardResponse), args.Error(1)
}

// MockComparisonService is a mock implementation of ComparisonService
type MockComparisonService struct {
	mock.Mock
}

func NewMockComparisonService(t *testing.T) *MockComparisonService {
	m := &MockComparisonService{}
	m.Test(t)
	return m
}

func (m *MockComparisonService) Compare(ctx context.Context, query dto.CompareQuery) (*dto.CompareResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CompareResponse), args.Error(1)
}

// MockCostService is a mock implementation of CostService
type MockCostService struct {
	mock.Mock
}

func NewMockCostService(t *testing.T) *MockCostService {
	m := &MockCostService{}
	m.Test(t)
	return m
}

func (m *MockCostService) Estimate(ctx context.Context, query dto.EstimateQuery) (*dto.EstimateResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EstimateResponse), args.Error(1)
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	mock.Mock
}

func NewMockRecommendationService(t *testing.T) *MockRecommendationService {
	m := &MockRecommendationService{}
	m.Test(t)
	return m
}

func (m *MockRecommendationService) GetQuiz(ctx context.Context) (*dto.QuizResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResponse), args.Error(1)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecommendationResponse), args.Error(1)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func NewMockExportService(t *testing.T) *MockExportService {
	m := &MockExportService{}
	m.Test(t)
	return m
}

func (m *MockExportService) ExportComparison(ctx context.Context, req dto.ExportRequest, writer io.Writer) error {
	args := m.Called(ctx, req, writer)
	return args.Error(0)
}
