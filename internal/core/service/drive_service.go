package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type DriveService struct {
	drives    ports.DriveRepository
	companies ports.CompanyRepository
	cache     AnalyticsCache
	logger    zerolog.Logger
}

func NewDriveService(drives ports.DriveRepository, companies ports.CompanyRepository, cache AnalyticsCache, logger zerolog.Logger) *DriveService {
	if cache == nil {
		cache = NopCache{}
	}
	return &DriveService{drives: drives, companies: companies, cache: cache, logger: logger}
}

// Create resolves input.CompanyID and stores the company's current name on the
// drive. Nothing is written when the company does not exist.
func (s *DriveService) Create(ctx context.Context, input ports.DriveInput) (*domain.Drive, error) {
	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("create drive: %w", err)
	}

	drive := &domain.Drive{
		ID:                  newID(),
		CompanyID:           company.ID,
		CompanyName:         company.Name,
		Date:                input.Date,
		EligibleDepartments: departments(input.EligibleDepartments),
		Role:                input.Role,
		Description:         input.Description,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.drives.Create(ctx, drive); err != nil {
		s.logger.Error().Err(err).Msg("failed to create drive")
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("drive_id", drive.ID).Str("company_id", company.ID).Msg("drive created")
	return drive, nil
}

func (s *DriveService) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Drive, error) {
	return s.drives.List(ctx, opts.Normalize())
}

func (s *DriveService) Get(ctx context.Context, id string) (*domain.Drive, error) {
	return s.drives.FindByID(ctx, id)
}

// Update replaces the drive's fields and re-snapshots the company name from
// the company input.CompanyID points at now.
func (s *DriveService) Update(ctx context.Context, id string, input ports.DriveInput) (*domain.Drive, error) {
	if _, err := s.drives.FindByID(ctx, id); err != nil {
		return nil, err
	}

	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("update drive: %w", err)
	}

	updated, err := s.drives.Update(ctx, &domain.Drive{
		ID:                  id,
		CompanyID:           company.ID,
		CompanyName:         company.Name,
		Date:                input.Date,
		EligibleDepartments: departments(input.EligibleDepartments),
		Role:                input.Role,
		Description:         input.Description,
	})
	if err != nil {
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)
	return updated, nil
}

func (s *DriveService) Delete(ctx context.Context, id string) error {
	if err := s.drives.Delete(ctx, id); err != nil {
		return err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("drive_id", id).Msg("drive deleted")
	return nil
}

// departments never returns nil so the field is stored as an array.
func departments(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
