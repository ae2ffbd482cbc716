package services

import (
	"context"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/recommend"
)

// RecommendationServiceImpl implements RecommendationService
type RecommendationServiceImpl struct {
	catalog *catalog.Catalog
	topN    int
}

// NewRecommendationService creates a recommendation service returning topN providers
func NewRecommendationService(c *catalog.Catalog, topN int) RecommendationService {
	if topN <= 0 || topN > recommend.DefaultTopN {
		topN = recommend.DefaultTopN
	}
	return &RecommendationServiceImpl{
		catalog: c,
		topN:    topN,
	}
}

// GetQuiz returns the three quiz questions
func (s *RecommendationServiceImpl) GetQuiz(ctx context.Context) (*dto.QuizResponse, error) {
	return &dto.QuizResponse{Questions: recommend.Questions()}, nil
}

// Recommend scores the catalog against a completed set of answers
func (s *RecommendationServiceImpl) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.FromDomain(err, "answers", recommend.ErrInvalidOption)
	}

	answers := req.Answers()
	return dto.ToRecommendationResponse(answers, recommend.Recommend(s.catalog, answers, s.topN)), nil
}
