package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechbench/internal/api/middleware"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/services"
)

// LeaderboardHandler serves the composite score ranking
type LeaderboardHandler struct {
	service services.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(service services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
	}
}

// Get handles GET /api/v1/leaderboard?limit=N
//
// @Summary Leaderboard
// @Description Providers ranked by the sum of quality, speed, features and price scores. Ties keep catalog order.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries (1-10)" default(10)
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 422 {object} errors.APIError "Limit out of range"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	var query dto.LeaderboardQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.GetLeaderboard(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
