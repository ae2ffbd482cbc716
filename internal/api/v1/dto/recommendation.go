package dto

import (
	"speechbench/internal/app/recommend"
)

// QuizResponse exposes the question table
type QuizResponse struct {
	Questions []recommend.Question `json:"questions"`
}

// RecommendationRequest carries the three quiz answers
type RecommendationRequest struct {
	UseCase  string `json:"use_case" binding:"required"`
	Priority string `json:"priority" binding:"required,oneof=quality speed price"`
	Volume   string `json:"volume" binding:"required,oneof=low medium high"`
}

// Answers converts the request to quiz answers
func (r RecommendationRequest) Answers() recommend.Answers {
	return recommend.Answers{
		UseCase:  recommend.UseCase(r.UseCase),
		Priority: recommend.Priority(r.Priority),
		Volume:   recommend.Volume(r.Volume),
	}
}

// Validate checks the answers against the question table
func (r RecommendationRequest) Validate() error {
	return r.Answers().Validate()
}

// RecommendationItem is one ranked provider
type RecommendationItem struct {
	Rank     int              `json:"rank"`
	Score    float64          `json:"score"`
	Provider ProviderResponse `json:"provider"`
}

// RecommendationResponse is the quiz result
type RecommendationResponse struct {
	Answers         recommend.Answers    `json:"answers"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// ToRecommendationResponse converts scored providers to the response DTO
func ToRecommendationResponse(answers recommend.Answers, recs []recommend.Recommendation) *RecommendationResponse {
	items := make([]RecommendationItem, len(recs))
	for i, r := range recs {
		items[i] = RecommendationItem{
			Rank:     i + 1,
			Score:    r.Score,
			Provider: ToProviderResponse(r.Provider),
		}
	}
	return &RecommendationResponse{Answers: answers, Recommendations: items}
}
