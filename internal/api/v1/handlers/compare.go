package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/middleware"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/services"
)

// CompareHandler serves the comparison matrix
type CompareHandler struct {
	service services.ComparisonService
}

// NewCompareHandler creates a new comparison handler
func NewCompareHandler(service services.ComparisonService) *CompareHandler {
	return &CompareHandler{
		service: service,
	}
}

// Get handles GET /api/v1/compare?modality=ALL|TTS|STT&differences_only=bool
//
// @Summary Comparison matrix
// @Description One row per provider with pricing tiers, star ratings, features and language count. TTS and STT match exactly; BOTH providers only appear under ALL.
// @Tags compare
// @Produce json
// @Param modality query string false "ALL, TTS or STT" default(ALL)
// @Param differences_only query bool false "Accepted and echoed; rows are not diffed"
// @Success 200 {object} dto.CompareResponse
// @Failure 422 {object} errors.APIError "Unknown modality"
// @Router /compare [get]
func (h *CompareHandler) Get(c *gin.Context) {
	var query dto.CompareQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, errors.FromDomain(err, "modality"))
		return
	}

	resp, err := h.service.Compare(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
