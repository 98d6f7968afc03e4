package ports

import (
	"context"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	CreateMany(ctx context.Context, companies []*domain.Company) error
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
