package services

import (
	"context"

	"github.com/samber/lo"

	"speechbench/internal/api/errors"
	"speechbench/internal/api/v1/dto"
	"speechbench/internal/app/catalog"
	apperrors "speechbench/internal/app/errors"
)

// ProviderServiceImpl implements ProviderService
type ProviderServiceImpl struct {
	catalog *catalog.Catalog
}

// NewProviderService creates a new provider service
func NewProviderService(c *catalog.Catalog) ProviderService {
	return &ProviderServiceImpl{
		catalog: c,
	}
}

// ListProviders lists providers in catalog order, optionally narrowed to a modality
func (s *ProviderServiceImpl) ListProviders(ctx context.Context, query dto.ListProvidersQuery) (*dto.ProviderListResponse, error) {
	providers := s.catalog.All()
	if query.Modality != "" {
		m, err := catalog.ParseModality(query.Modality)
		if err != nil {
			return nil, errors.FromDomain(err, "modality")
		}
		// BOTH providers serve either selection
		providers = s.catalog.ByModality(m, true)
	}

	return &dto.ProviderListResponse{
		CatalogVersion: s.catalog.Version(),
		Providers:      lo.Map(providers, func(p catalog.Provider, _ int) dto.ProviderResponse { return dto.ToProviderResponse(p) }),
	}, nil
}

// GetProvider gets a single provider by id
func (s *ProviderServiceImpl) GetProvider(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return nil, errors.FromDomain(apperrors.NotFound("provider", id), "provider")
	}

	resp := dto.ToProviderResponse(p)
	return &resp, nil
}
