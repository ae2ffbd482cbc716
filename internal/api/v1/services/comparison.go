package services

import (
	"context"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/compare"
)

// ComparisonServiceImpl implements ComparisonService
type ComparisonServiceImpl struct {
	catalog *catalog.Catalog
}

// NewComparisonService creates a new comparison service
func NewComparisonService(c *catalog.Catalog) ComparisonService {
	return &ComparisonServiceImpl{
		catalog: c,
	}
}

// Compare builds the comparison matrix for the requested modality
func (s *ComparisonServiceImpl) Compare(ctx context.Context, query dto.CompareQuery) (*dto.CompareResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, errors.FromDomain(err, "modality")
	}

	return &dto.CompareResponse{
		CatalogVersion: s.catalog.Version(),
		Matrix:         compare.Build(s.catalog, query.Filter()),
	}, nil
}
