package ports

import (
	"context"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// DriveRepository defines persistence operations for recruitment drives.
type DriveRepository interface {
	Create(ctx context.Context, d *domain.Drive) error
	CreateMany(ctx context.Context, drives []*domain.Drive) error
	FindByID(ctx context.Context, id string) (*domain.Drive, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Drive, error)
	Update(ctx context.Context, d *domain.Drive) (*domain.Drive, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
