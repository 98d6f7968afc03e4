package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

const (
	MsgSeeded        = "Database seeded successfully!"
	MsgAlreadySeeded = "Database already has data. Skipping seed."
)

// SeedService fills an empty store with a synthetic dataset. A store whose
// students collection holds any document is considered seeded.
type SeedService struct {
	students  ports.StudentRepository
	companies ports.CompanyRepository
	drives    ports.DriveRepository
	offers    ports.OfferRepository
	lock      SeedLock
	cache     AnalyticsCache
	logger    zerolog.Logger

	mu  sync.Mutex // serialises runs in this process and guards rng
	rng *rand.Rand
}

// SeedOption customises a SeedService.
type SeedOption func(*SeedService)

// WithRand fixes the random source, making the generated dataset
// reproducible.
func WithRand(rng *rand.Rand) SeedOption {
	return func(s *SeedService) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func NewSeedService(
	students ports.StudentRepository,
	companies ports.CompanyRepository,
	drives ports.DriveRepository,
	offers ports.OfferRepository,
	lock SeedLock,
	cache AnalyticsCache,
	logger zerolog.Logger,
	opts ...SeedOption,
) *SeedService {
	if lock == nil {
		lock = NopLock{}
	}
	if cache == nil {
		cache = NopCache{}
	}
	now := uint64(time.Now().UnixNano())
	s := &SeedService{
		students:  students,
		companies: companies,
		drives:    drives,
		offers:    offers,
		lock:      lock,
		cache:     cache,
		logger:    logger,
		rng:       rand.New(rand.NewPCG(now, now>>1|1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed generates 50 students, 10 companies, 20 drives and one offer each for
// 30 to 40 distinct students. It is a no-op when students already exist or
// when another seed holds the lock. Insert failures are returned as is; a
// partially written dataset is not rolled back.
func (s *SeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	seeded, err := s.hasData(ctx)
	if err != nil {
		return nil, err
	}
	if seeded {
		return alreadySeeded(), nil
	}

	acquired, err := s.lock.Acquire(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("seed lock unavailable, seeding without it")
	} else if !acquired {
		s.logger.Info().Msg("seed already running elsewhere")
		return alreadySeeded(), nil
	} else {
		defer func() {
			if err := s.lock.Release(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("failed to release seed lock")
			}
		}()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under both locks: a seed that finished after the first count
	// has already written students.
	if seeded, err = s.hasData(ctx); err != nil {
		return nil, err
	} else if seeded {
		return alreadySeeded(), nil
	}

	now := time.Now().UTC()

	students := s.generateStudents(now)
	if err := s.students.CreateMany(ctx, students); err != nil {
		return nil, fmt.Errorf("seed students: %w", err)
	}

	companies := s.generateCompanies(now)
	if err := s.companies.CreateMany(ctx, companies); err != nil {
		return nil, fmt.Errorf("seed companies: %w", err)
	}

	drives := s.generateDrives(companies, now)
	if err := s.drives.CreateMany(ctx, drives); err != nil {
		return nil, fmt.Errorf("seed drives: %w", err)
	}

	offers := s.generateOffers(students, companies, now)
	if err := s.offers.CreateMany(ctx, offers); err != nil {
		return nil, fmt.Errorf("seed offers: %w", err)
	}

	invalidateAnalytics(ctx, s.cache, s.logger)

	s.logger.Info().
		Int("students", len(students)).
		Int("companies", len(companies)).
		Int("drives", len(drives)).
		Int("offers", len(offers)).
		Msg("database seeded")

	return &ports.SeedResult{
		Message:   MsgSeeded,
		Students:  len(students),
		Companies: len(companies),
		Drives:    len(drives),
		Offers:    len(offers),
	}, nil
}

func (s *SeedService) hasData(ctx context.Context) (bool, error) {
	n, err := s.students.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count students: %w", err)
	}
	return n > 0, nil
}

func alreadySeeded() *ports.SeedResult {
	return &ports.SeedResult{AlreadySeeded: true, Message: MsgAlreadySeeded}
}

func (s *SeedService) generateStudents(now time.Time) []*domain.Student {
	out := make([]*domain.Student, 0, seedStudentCount)
	for i := 0; i < seedStudentCount; i++ {
		first := pick(s.rng, seedFirstNames)
		last := pick(s.rng, seedLastNames)
		dept := pick(s.rng, seedDepartments)
		out = append(out, &domain.Student{
			ID:         newID(),
			Name:       first + " " + last,
			RollNumber: fmt.Sprintf("21%s%d", dept, 1000+i),
			Department: dept,
			CGPA:       round2(6.5 + s.rng.Float64()*(9.8-6.5)),
			Email:      fmt.Sprintf("%s.%s@college.edu", strings.ToLower(first), strings.ToLower(last)),
			Phone:      fmt.Sprintf("+91%d", 7000000000+s.rng.Int64N(3000000000)),
			CreatedAt:  now,
		})
	}
	return out
}

func (s *SeedService) generateCompanies(now time.Time) []*domain.Company {
	out := make([]*domain.Company, 0, len(seedCompanies))
	for _, c := range seedCompanies {
		website := "https://" + strings.ToLower(strings.ReplaceAll(c.name, " ", "")) + ".com"
		out = append(out, &domain.Company{
			ID:        newID(),
			Name:      c.name,
			Domain:    c.domain,
			Package:   c.pkg,
			Location:  c.location,
			Website:   &website,
			CreatedAt: now,
		})
	}
	return out
}

func (s *SeedService) generateDrives(companies []*domain.Company, now time.Time) []*domain.Drive {
	out := make([]*domain.Drive, 0, seedDriveCount)
	for i := 0; i < seedDriveCount; i++ {
		company := pick(s.rng, companies)
		role := pick(s.rng, seedRoles)
		description := fmt.Sprintf("Campus recruitment drive for %s position", role)
		out = append(out, &domain.Drive{
			ID:                  newID(),
			CompanyID:           company.ID,
			CompanyName:         company.Name,
			Date:                s.randomDate(),
			EligibleDepartments: sample(s.rng, seedDepartments, 2+s.rng.IntN(3)),
			Role:                role,
			Description:         &description,
			CreatedAt:           now,
		})
	}
	return out
}

func (s *SeedService) generateOffers(students []*domain.Student, companies []*domain.Company, now time.Time) []*domain.Offer {
	n := seedMinOffers + s.rng.IntN(seedMaxOffers-seedMinOffers+1)
	placed := sample(s.rng, students, n)

	out := make([]*domain.Offer, 0, len(placed))
	for _, st := range placed {
		company := pick(s.rng, companies)
		out = append(out, &domain.Offer{
			ID:          newID(),
			StudentID:   st.ID,
			StudentName: st.Name,
			CompanyID:   company.ID,
			CompanyName: company.Name,
			Package:     round2(company.Package - 1.0 + s.rng.Float64()*3.0),
			Role:        pick(s.rng, seedRoles),
			Date:        s.randomDate(),
			CreatedAt:   now,
		})
	}
	return out
}

// randomDate returns a YYYY-MM-DD date between 2023 and 2025.
func (s *SeedService) randomDate() string {
	return fmt.Sprintf("202%d-%02d-%02d", 3+s.rng.IntN(3), 1+s.rng.IntN(12), 1+s.rng.IntN(28))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// sample returns n distinct items in random order.
func sample[T any](rng *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	perm := rng.Perm(len(items))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = items[perm[i]]
	}
	return out
}
