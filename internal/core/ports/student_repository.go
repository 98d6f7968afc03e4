package ports

import (
	"context"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) error
	CreateMany(ctx context.Context, students []*domain.Student) error
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Student, error)
	// Update replaces every mutable field of the student with the given id and
	// returns the stored result.
	Update(ctx context.Context, s *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
