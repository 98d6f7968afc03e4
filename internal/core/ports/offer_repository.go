package ports

import (
	"context"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// OfferRepository defines persistence operations for offers. Offers are
// immutable once created, so there is no Update.
type OfferRepository interface {
	Create(ctx context.Context, o *domain.Offer) error
	CreateMany(ctx context.Context, offers []*domain.Offer) error
	FindByID(ctx context.Context, id string) (*domain.Offer, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Offer, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
