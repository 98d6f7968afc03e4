package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placementiq/placement-api/internal/core/domain"
)

type offerDocument struct {
	ID          string  `bson:"id"`
	StudentID   string  `bson:"student_id"`
	StudentName string  `bson:"student_name"`
	CompanyID   string  `bson:"company_id"`
	CompanyName string  `bson:"company_name"`
	Package     float64 `bson:"package"`
	Role        string  `bson:"role"`
	Date        string  `bson:"date"`
	CreatedAt   string  `bson:"created_at"`
}

func toOfferDocument(o *domain.Offer) offerDocument {
	return offerDocument{
		ID:          o.ID,
		StudentID:   o.StudentID,
		StudentName: o.StudentName,
		CompanyID:   o.CompanyID,
		CompanyName: o.CompanyName,
		Package:     o.Package,
		Role:        o.Role,
		Date:        o.Date,
		CreatedAt:   formatTime(o.CreatedAt),
	}
}

func (d *offerDocument) toDomain() (*domain.Offer, error) {
	created, err := parseTime(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Offer{
		ID:          d.ID,
		StudentID:   d.StudentID,
		StudentName: d.StudentName,
		CompanyID:   d.CompanyID,
		CompanyName: d.CompanyName,
		Package:     d.Package,
		Role:        d.Role,
		Date:        d.Date,
		CreatedAt:   created,
	}, nil
}

// OfferRepository stores offers. Offers are immutable once written.
type OfferRepository struct {
	store[offerDocument, domain.Offer]
}

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{store[offerDocument, domain.Offer]{
		col:      db.Collection(collectionOffers),
		name:     "offer",
		notFound: domain.ErrOfferNotFound,
		toDoc:    toOfferDocument,
		toEntity: (*offerDocument).toDomain,
	}}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	return r.insert(ctx, o)
}

func (r *OfferRepository) CreateMany(ctx context.Context, offers []*domain.Offer) error {
	return r.insertMany(ctx, offers)
}

func (r *OfferRepository) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	return r.findByID(ctx, id)
}

func (r *OfferRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Offer, error) {
	return r.list(ctx, opts)
}

func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *OfferRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}
