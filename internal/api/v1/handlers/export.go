package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"speechbench/internal/api/middleware"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/api/v1/services"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles GET /api/v1/compare/export?format=csv|json|xlsx&modality=
//
// @Summary Export the comparison matrix
// @Description Downloads the comparison matrix as CSV, JSON or an Excel workbook
// @Tags compare
// @Produce text/csv,application/json,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv, json or xlsx" default(csv)
// @Param modality query string false "ALL, TTS or STT" default(ALL)
// @Param differences_only query bool false "Accepted and echoed; rows are not diffed"
// @Success 200 {file} file "Comparison export"
// @Failure 422 {object} errors.APIError "Unknown format or modality"
// @Router /compare/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := middleware.ValidateQuery(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	// Buffered so a failed export still gets an error status
	var buf bytes.Buffer
	if err := h.service.ExportComparison(c.Request.Context(), req, &buf); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", req.Filename()))
	c.Data(http.StatusOK, req.ContentType(), buf.Bytes())
}
