package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type StudentService struct {
	repo   ports.StudentRepository
	cache  AnalyticsCache
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, cache AnalyticsCache, logger zerolog.Logger) *StudentService {
	if cache == nil {
		cache = NopCache{}
	}
	return &StudentService{repo: repo, cache: cache, logger: logger}
}

func (s *StudentService) Create(ctx context.Context, input ports.StudentInput) (*domain.Student, error) {
	student := &domain.Student{
		ID:         newID(),
		Name:       input.Name,
		RollNumber: input.RollNumber,
		Department: input.Department,
		CGPA:       input.CGPA,
		Email:      input.Email,
		Phone:      input.Phone,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, student); err != nil {
		s.logger.Error().Err(err).Msg("failed to create student")
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("student_id", student.ID).Str("department", student.Department).Msg("student created")
	return student, nil
}

func (s *StudentService) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Student, error) {
	return s.repo.List(ctx, opts.Normalize())
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	updated, err := s.repo.Update(ctx, &domain.Student{
		ID:         id,
		Name:       input.Name,
		RollNumber: input.RollNumber,
		Department: input.Department,
		CGPA:       input.CGPA,
		Email:      input.Email,
		Phone:      input.Phone,
	})
	if err != nil {
		return nil, err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)
	return updated, nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().Str("student_id", id).Msg("student deleted")
	return nil
}
