package services

import (
	"context"
	stderrors "errors"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/estimator"
)

// CostServiceImpl implements CostService
type CostServiceImpl struct {
	catalog   *catalog.Catalog
	estimator *estimator.Estimator
}

// NewCostService creates a new cost service
func NewCostService(c *catalog.Catalog, e *estimator.Estimator) CostService {
	return &CostServiceImpl{
		catalog:   c,
		estimator: e,
	}
}

// Estimate projects the monthly cost of every provider serving the modality
func (s *CostServiceImpl) Estimate(ctx context.Context, query dto.EstimateQuery) (*dto.EstimateResponse, error) {
	m, err := catalog.ParseModality(query.Modality)
	if err != nil {
		return nil, errors.FromDomain(err, "modality")
	}

	result, err := s.estimator.Estimate(query.Hours, m)
	if err != nil {
		field := "modality"
		if stderrors.Is(err, estimator.ErrInvalidHours) {
			field = "hours"
		}
		return nil, errors.FromDomain(err, field, estimator.ErrInvalidHours, estimator.ErrInvalidModality)
	}

	return &dto.EstimateResponse{
		CatalogVersion:    s.catalog.Version(),
		Hours:             result.Hours,
		Modality:          string(result.Modality),
		CharsPerAudioHour: estimator.CharsPerAudioHour,
		Standard:          result.Standard,
		Outliers:          result.Outliers,
	}, nil
}
