package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type OfferService struct {
	offers    ports.OfferRepository
	students  ports.StudentRepository
	companies ports.CompanyRepository
	cache     AnalyticsCache
	logger    zerolog.Logger
}

func NewOfferService(
	offers ports.OfferRepository,
	students ports.StudentRepository,
	companies ports.CompanyRepository,
	cache AnalyticsCache,
	logger zerolog.Logger,
) *OfferService {
	if cache == nil {
		cache = NopCache{}
	}
	return &OfferService{
		offers:    offers,
		students:  students,
		companies: companies,
		cache:     cache,
		logger:    logger,
	}
}

// Create resolves the student first, then the company, and snapshots both
// names onto the offer. A missing reference fails with that entity's
// not-found error and nothing is written.
func (s *OfferService) Create(ctx context.Context, input ports.OfferInput) (*domain.Offer, error) {
	student, err := s.students.FindByID(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}
	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	offer := &domain.Offer{
		ID:          newID(),
		StudentID:   student.ID,
		StudentName: student.Name,
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Package:     input.Package,
		Role:        input.Role,
		Date:        input.Date,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.offers.Create(ctx, offer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create offer")
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().
		Str("offer_id", offer.ID).
		Str("student_id", student.ID).
		Str("company_id", company.ID).
		Msg("offer created")
	return offer, nil
}

func (s *OfferService) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Offer, error) {
	return s.offers.List(ctx, opts.Normalize())
}

func (s *OfferService) Get(ctx context.Context, id string) (*domain.Offer, error) {
	return s.offers.FindByID(ctx, id)
}

func (s *OfferService) Delete(ctx context.Context, id string) error {
	if err := s.offers.Delete(ctx, id); err != nil {
		return err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("offer_id", id).Msg("offer deleted")
	return nil
}
