package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/middleware"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/services"
)

// EstimateHandler serves the cost calculator
type EstimateHandler struct {
	service services.CostService
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(service services.CostService) *EstimateHandler {
	return &EstimateHandler{
		service: service,
	}
}

// Get handles GET /api/v1/estimate?hours=H&modality=TTS|STT
//
// @Summary Estimate monthly cost
// @Description Prices the monthly volume with each provider's first tier. TTS assumes 15000 characters per audio hour. Outliers are the designated outlier provider and anything above the threshold.
// @Tags estimate
// @Produce json
// @Param hours query number true "Monthly audio hours (1-1000)"
// @Param modality query string true "TTS or STT"
// @Success 200 {object} dto.EstimateResponse
// @Failure 422 {object} errors.APIError "Hours out of range or unsupported modality"
// @Failure 500 {object} errors.APIError "Unsupported pricing unit in strict mode"
// @Router /estimate [get]
func (h *EstimateHandler) Get(c *gin.Context) {
	var query dto.EstimateQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, errors.FromDomain(err, "modality"))
		return
	}

	resp, err := h.service.Estimate(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
