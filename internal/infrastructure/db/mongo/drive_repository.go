package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placementiq/placement-api/internal/core/domain"
)

type driveDocument struct {
	ID                  string   `bson:"id"`
	CompanyID           string   `bson:"company_id"`
	CompanyName         string   `bson:"company_name"`
	Date                string   `bson:"date"`
	EligibleDepartments []string `bson:"eligible_departments"`
	Role                string   `bson:"role"`
	Description         *string  `bson:"description"`
	CreatedAt           string   `bson:"created_at"`
}

func toDriveDocument(d *domain.Drive) driveDocument {
	depts := d.EligibleDepartments
	if depts == nil {
		depts = []string{}
	}
	return driveDocument{
		ID:                  d.ID,
		CompanyID:           d.CompanyID,
		CompanyName:         d.CompanyName,
		Date:                d.Date,
		EligibleDepartments: depts,
		Role:                d.Role,
		Description:         d.Description,
		CreatedAt:           formatTime(d.CreatedAt),
	}
}

func (d *driveDocument) toDomain() (*domain.Drive, error) {
	created, err := parseTime(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	depts := d.EligibleDepartments
	if depts == nil {
		depts = []string{}
	}
	return &domain.Drive{
		ID:                  d.ID,
		CompanyID:           d.CompanyID,
		CompanyName:         d.CompanyName,
		Date:                d.Date,
		EligibleDepartments: depts,
		Role:                d.Role,
		Description:         d.Description,
		CreatedAt:           created,
	}, nil
}

type DriveRepository struct {
	store[driveDocument, domain.Drive]
}

func NewDriveRepository(db *mongo.Database) *DriveRepository {
	return &DriveRepository{store[driveDocument, domain.Drive]{
		col:      db.Collection(collectionDrives),
		name:     "drive",
		notFound: domain.ErrDriveNotFound,
		toDoc:    toDriveDocument,
		toEntity: (*driveDocument).toDomain,
	}}
}

func (r *DriveRepository) Create(ctx context.Context, d *domain.Drive) error {
	return r.insert(ctx, d)
}

func (r *DriveRepository) CreateMany(ctx context.Context, drives []*domain.Drive) error {
	return r.insertMany(ctx, drives)
}

func (r *DriveRepository) FindByID(ctx context.Context, id string) (*domain.Drive, error) {
	return r.findByID(ctx, id)
}

func (r *DriveRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Drive, error) {
	return r.list(ctx, opts)
}

func (r *DriveRepository) Update(ctx context.Context, d *domain.Drive) (*domain.Drive, error) {
	doc := toDriveDocument(d)
	return r.update(ctx, d.ID, bson.M{
		"company_id":           doc.CompanyID,
		"company_name":         doc.CompanyName,
		"date":                 doc.Date,
		"eligible_departments": doc.EligibleDepartments,
		"role":                 doc.Role,
		"description":          doc.Description,
	})
}

func (r *DriveRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *DriveRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}
