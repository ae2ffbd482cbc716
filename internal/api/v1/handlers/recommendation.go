package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/middleware"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/services"
	"speechbench/internal/app/recommend"
)

// RecommendationHandler serves the quiz
type RecommendationHandler struct {
	service services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
	}
}

// Quiz handles GET /api/v1/quiz
//
// @Summary Quiz questions
// @Description The three quiz steps with their selectable options
// @Tags recommendations
// @Produce json
// @Success 200 {object} dto.QuizResponse
// @Router /quiz [get]
func (h *RecommendationHandler) Quiz(c *gin.Context) {
	quiz, err := h.service.GetQuiz(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// Recommend handles POST /api/v1/recommendations
//
// @Summary Recommend providers
// @Description Scores every provider against the three answers and returns the top 3
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Quiz answers"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 422 {object} errors.APIError "Missing or unknown answer"
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req dto.RecommendationRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, errors.FromDomain(err, "answers", recommend.ErrInvalidOption))
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
