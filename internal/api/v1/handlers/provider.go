package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/middleware"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/services"
)

// ProviderHandler handles provider-related API endpoints
type ProviderHandler struct {
	service services.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		service: service,
	}
}

// List handles GET /api/v1/providers
// Optional ?modality=TTS|STT|BOTH narrows the listing; BOTH providers match TTS and STT.
//
// @Summary List providers
// @Description Lists catalog providers in catalog order
// @Tags providers
// @Produce json
// @Param modality query string false "TTS, STT or BOTH"
// @Success 200 {object} dto.ProviderListResponse
// @Failure 422 {object} errors.APIError "Unknown modality"
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	var query dto.ListProvidersQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, errors.FromDomain(err, "modality"))
		return
	}

	providers, err := h.service.ListProviders(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, providers)
}

// Get handles GET /api/v1/providers/:id
//
// @Summary Get provider
// @Description Retrieves one provider with its pricing tiers and benchmarks
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} dto.ProviderResponse
// @Failure 404 {object} errors.APIError "Provider not found"
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Provider ID is required"))
		return
	}

	provider, err := h.service.GetProvider(c.Request.Context(), providerID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}
