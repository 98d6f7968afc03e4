package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type CompanyService struct {
	repo   ports.CompanyRepository
	cache  AnalyticsCache
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, cache AnalyticsCache, logger zerolog.Logger) *CompanyService {
	if cache == nil {
		cache = NopCache{}
	}
	return &CompanyService{repo: repo, cache: cache, logger: logger}
}

func (s *CompanyService) Create(ctx context.Context, input ports.CompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		ID:        newID(),
		Name:      input.Name,
		Domain:    input.Domain,
		Package:   input.Package,
		Location:  input.Location,
		Website:   input.Website,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, company); err != nil {
		s.logger.Error().Err(err).Msg("failed to create company")
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("company_id", company.ID).Str("name", company.Name).Msg("company created")
	return company, nil
}

func (s *CompanyService) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Company, error) {
	return s.repo.List(ctx, opts.Normalize())
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the company's fields. Drives and offers that copied the old
// name keep it.
func (s *CompanyService) Update(ctx context.Context, id string, input ports.CompanyInput) (*domain.Company, error) {
	updated, err := s.repo.Update(ctx, &domain.Company{
		ID:       id,
		Name:     input.Name,
		Domain:   input.Domain,
		Package:  input.Package,
		Location: input.Location,
		Website:  input.Website,
	})
	if err != nil {
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)
	return updated, nil
}

// Delete removes the company only; drives and offers referencing it are left
// in place.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("company_id", id).Msg("company deleted")
	return nil
}
