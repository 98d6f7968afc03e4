package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// Cache keys, one per aggregate.
const (
	KeyDepartmentPlacements = "department-placements"
	KeyCompanyPackages      = "company-packages"
	KeyYearlyTrends         = "yearly-trends"
	KeyRoleDistribution     = "role-distribution"
	KeyStats                = "stats"
)

var scanWindow = domain.ListOptions{Limit: domain.AnalyticsScanLimit}

// AnalyticsService derives aggregates from bounded scans of each collection.
// Each computation reads at most domain.AnalyticsScanLimit documents per
// collection.
type AnalyticsService struct {
	students  ports.StudentRepository
	companies ports.CompanyRepository
	drives    ports.DriveRepository
	offers    ports.OfferRepository
	cache     AnalyticsCache
	logger    zerolog.Logger
}

func NewAnalyticsService(
	students ports.StudentRepository,
	companies ports.CompanyRepository,
	drives ports.DriveRepository,
	offers ports.OfferRepository,
	cache AnalyticsCache,
	logger zerolog.Logger,
) *AnalyticsService {
	if cache == nil {
		cache = NopCache{}
	}
	return &AnalyticsService{
		students:  students,
		companies: companies,
		drives:    drives,
		offers:    offers,
		cache:     cache,
		logger:    logger,
	}
}

// DepartmentPlacements counts, per department, the students that hold at
// least one offer.
func (s *AnalyticsService) DepartmentPlacements(ctx context.Context) (*domain.Series[int], error) {
	return cached(ctx, s, KeyDepartmentPlacements, func(ctx context.Context) (*domain.Series[int], error) {
		offers, err := s.offers.List(ctx, scanWindow)
		if err != nil {
			return nil, fmt.Errorf("department placements: %w", err)
		}
		students, err := s.students.List(ctx, scanWindow)
		if err != nil {
			return nil, fmt.Errorf("department placements: %w", err)
		}

		placed := placedStudents(offers)
		t := newTally[int]()
		for _, st := range students {
			if _, ok := placed[st.ID]; ok {
				t.add(st.Department, 1)
			}
		}
		return t.series(), nil
	})
}

// CompanyPackages reports each company's advertised package keyed by name.
// Two companies with the same name collapse into one label and the one read
// last wins.
func (s *AnalyticsService) CompanyPackages(ctx context.Context) (*domain.Series[float64], error) {
	return cached(ctx, s, KeyCompanyPackages, func(ctx context.Context) (*domain.Series[float64], error) {
		companies, err := s.companies.List(ctx, scanWindow)
		if err != nil {
			return nil, fmt.Errorf("company packages: %w", err)
		}

		t := newTally[float64]()
		for _, c := range companies {
			t.set(c.Name, c.Package)
		}
		return t.series(), nil
	})
}

// YearlyTrends counts offers per year, taken from the first four characters
// of the offer date, in ascending label order.
func (s *AnalyticsService) YearlyTrends(ctx context.Context) (*domain.Series[int], error) {
	return cached(ctx, s, KeyYearlyTrends, func(ctx context.Context) (*domain.Series[int], error) {
		offers, err := s.offers.List(ctx, scanWindow)
		if err != nil {
			return nil, fmt.Errorf("yearly trends: %w", err)
		}

		t := newTally[int]()
		for _, o := range offers {
			t.add(yearOf(o.Date), 1)
		}
		sort.Strings(t.order)
		return t.series(), nil
	})
}

// RoleDistribution counts offers per role.
func (s *AnalyticsService) RoleDistribution(ctx context.Context) (*domain.Series[int], error) {
	return cached(ctx, s, KeyRoleDistribution, func(ctx context.Context) (*domain.Series[int], error) {
		offers, err := s.offers.List(ctx, scanWindow)
		if err != nil {
			return nil, fmt.Errorf("role distribution: %w", err)
		}

		t := newTally[int]()
		for _, o := range offers {
			t.add(o.Role, 1)
		}
		return t.series(), nil
	})
}

// Stats summarises the whole store. PlacementRate is a percentage in
// [0, 100]; both it and AveragePackage are rounded to two decimals and are 0
// when there is nothing to divide by.
func (s *AnalyticsService) Stats(ctx context.Context) (*domain.Stats, error) {
	return cached(ctx, s, KeyStats, func(ctx context.Context) (*domain.Stats, error) {
		var (
			st  domain.Stats
			err error
		)
		if st.TotalStudents, err = s.students.Count(ctx); err != nil {
			return nil, fmt.Errorf("stats: count students: %w", err)
		}
		if st.TotalCompanies, err = s.companies.Count(ctx); err != nil {
			return nil, fmt.Errorf("stats: count companies: %w", err)
		}
		if st.TotalDrives, err = s.drives.Count(ctx); err != nil {
			return nil, fmt.Errorf("stats: count drives: %w", err)
		}
		if st.TotalOffers, err = s.offers.Count(ctx); err != nil {
			return nil, fmt.Errorf("stats: count offers: %w", err)
		}

		offers, err := s.offers.List(ctx, scanWindow)
		if err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}

		if len(offers) > 0 {
			var sum float64
			for _, o := range offers {
				sum += o.Package
			}
			st.AveragePackage = round2(sum / float64(len(offers)))
		}

		st.PlacedStudents = len(placedStudents(offers))
		if st.TotalStudents > 0 {
			rate := float64(st.PlacedStudents) / float64(st.TotalStudents) * 100
			// Offers may still point at deleted students.
			st.PlacementRate = round2(math.Min(rate, 100))
		}
		return &st, nil
	})
}

func cached[T any](ctx context.Context, s *AnalyticsService, key string, compute func(context.Context) (*T, error)) (*T, error) {
	var hit T
	ok, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("analytics cache read failed")
	} else if ok {
		return &hit, nil
	}

	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
	return v, nil
}

func placedStudents(offers []*domain.Offer) map[string]struct{} {
	placed := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		placed[o.StudentID] = struct{}{}
	}
	return placed
}

func yearOf(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// tally accumulates values per label and remembers the order labels were
// first seen in.
type tally[T int | float64] struct {
	order  []string
	values map[string]T
}

func newTally[T int | float64]() *tally[T] {
	return &tally[T]{order: []string{}, values: make(map[string]T)}
}

func (t *tally[T]) add(label string, v T) {
	if _, ok := t.values[label]; !ok {
		t.order = append(t.order, label)
	}
	t.values[label] += v
}

func (t *tally[T]) set(label string, v T) {
	if _, ok := t.values[label]; !ok {
		t.order = append(t.order, label)
	}
	t.values[label] = v
}

func (t *tally[T]) series() *domain.Series[T] {
	out := &domain.Series[T]{
		Labels: make([]string, len(t.order)),
		Values: make([]T, len(t.order)),
	}
	for i, label := range t.order {
		out.Labels[i] = label
		out.Values[i] = t.values[label]
	}
	return out
}
