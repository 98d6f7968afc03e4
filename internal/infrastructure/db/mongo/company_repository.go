package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placementiq/placement-api/internal/core/domain"
)

type companyDocument struct {
	ID        string  `bson:"id"`
	Name      string  `bson:"name"`
	Domain    string  `bson:"domain"`
	Package   float64 `bson:"package"`
	Location  string  `bson:"location"`
	Website   *string `bson:"website"`
	CreatedAt string  `bson:"created_at"`
}

func toCompanyDocument(c *domain.Company) companyDocument {
	return companyDocument{
		ID:        c.ID,
		Name:      c.Name,
		Domain:    c.Domain,
		Package:   c.Package,
		Location:  c.Location,
		Website:   c.Website,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func (d *companyDocument) toDomain() (*domain.Company, error) {
	created, err := parseTime(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Company{
		ID:        d.ID,
		Name:      d.Name,
		Domain:    d.Domain,
		Package:   d.Package,
		Location:  d.Location,
		Website:   d.Website,
		CreatedAt: created,
	}, nil
}

type CompanyRepository struct {
	store[companyDocument, domain.Company]
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{store[companyDocument, domain.Company]{
		col:      db.Collection(collectionCompanies),
		name:     "company",
		notFound: domain.ErrCompanyNotFound,
		toDoc:    toCompanyDocument,
		toEntity: (*companyDocument).toDomain,
	}}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	return r.insert(ctx, c)
}

func (r *CompanyRepository) CreateMany(ctx context.Context, companies []*domain.Company) error {
	return r.insertMany(ctx, companies)
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.findByID(ctx, id)
}

func (r *CompanyRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Company, error) {
	return r.list(ctx, opts)
}

// Update overwrites every mutable field; a nil website is stored as null.
func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	return r.update(ctx, c.ID, bson.M{
		"name":     c.Name,
		"domain":   c.Domain,
		"package":  c.Package,
		"location": c.Location,
		"website":  c.Website,
	})
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}
