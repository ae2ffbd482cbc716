package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/compare"
	"speechbench/internal/app/render"
)

// ExportServiceImpl implements the ExportService interface
type ExportServiceImpl struct {
	catalog *catalog.Catalog
}

// NewExportService creates a new export service
func NewExportService(c *catalog.Catalog) ExportService {
	return &ExportServiceImpl{
		catalog: c,
	}
}

// ExportComparison writes the comparison matrix in the requested format
func (s *ExportServiceImpl) ExportComparison(ctx context.Context, req dto.ExportRequest, writer io.Writer) error {
	query := req.CompareQuery()
	if err := query.Validate(); err != nil {
		return errors.FromDomain(err, "modality")
	}
	m := compare.Build(s.catalog, query.Filter())

	switch req.Format {
	case "csv":
		return s.exportCSV(m, writer)
	case "json":
		return s.exportJSON(m, writer)
	case "xlsx":
		return render.ExportMatrix(writer, m)
	default:
		return errors.NewValidationError("Validation failed", map[string]string{
			"format": fmt.Sprintf("unsupported export format: %s", req.Format),
		})
	}
}

// exportCSV exports the matrix as CSV, one provider per row
func (s *ExportServiceImpl) exportCSV(m compare.Matrix, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{
		"ID",
		"Provider",
		"Type",
		"Pricing",
		"Quality",
		"Speed",
		"Languages",
		"Key Features",
		"Website",
	}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range m.Rows {
		row := []string{
			r.ProviderID,
			r.Name,
			r.Modality,
			strings.Join(r.Tiers, "; "),
			strconv.FormatFloat(r.Quality, 'f', -1, 64),
			strconv.FormatFloat(r.Speed, 'f', -1, 64),
			strconv.Itoa(r.LanguageCount),
			strings.Join(r.Features, "; "),
			r.Website,
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// exportJSON exports the matrix as indented JSON
func (s *ExportServiceImpl) exportJSON(m compare.Matrix, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dto.CompareResponse{
		CatalogVersion: s.catalog.Version(),
		Matrix:         m,
	})
}
