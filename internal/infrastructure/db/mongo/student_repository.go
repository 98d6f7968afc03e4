package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placementiq/placement-api/internal/core/domain"
)

type studentDocument struct {
	ID         string  `bson:"id"`
	Name       string  `bson:"name"`
	RollNumber string  `bson:"roll_number"`
	Department string  `bson:"department"`
	CGPA       float64 `bson:"cgpa"`
	Email      string  `bson:"email"`
	Phone      string  `bson:"phone"`
	CreatedAt  string  `bson:"created_at"`
}

func toStudentDocument(s *domain.Student) studentDocument {
	return studentDocument{
		ID:         s.ID,
		Name:       s.Name,
		RollNumber: s.RollNumber,
		Department: s.Department,
		CGPA:       s.CGPA,
		Email:      s.Email,
		Phone:      s.Phone,
		CreatedAt:  formatTime(s.CreatedAt),
	}
}

func (d *studentDocument) toDomain() (*domain.Student, error) {
	created, err := parseTime(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Student{
		ID:         d.ID,
		Name:       d.Name,
		RollNumber: d.RollNumber,
		Department: d.Department,
		CGPA:       d.CGPA,
		Email:      d.Email,
		Phone:      d.Phone,
		CreatedAt:  created,
	}, nil
}

type StudentRepository struct {
	store[studentDocument, domain.Student]
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{store[studentDocument, domain.Student]{
		col:      db.Collection(collectionStudents),
		name:     "student",
		notFound: domain.ErrStudentNotFound,
		toDoc:    toStudentDocument,
		toEntity: (*studentDocument).toDomain,
	}}
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	return r.insert(ctx, s)
}

func (r *StudentRepository) CreateMany(ctx context.Context, students []*domain.Student) error {
	return r.insertMany(ctx, students)
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	return r.findByID(ctx, id)
}

func (r *StudentRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Student, error) {
	return r.list(ctx, opts)
}

// Update overwrites every mutable field. id and created_at are left alone.
func (r *StudentRepository) Update(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	return r.update(ctx, s.ID, bson.M{
		"name":        s.Name,
		"roll_number": s.RollNumber,
		"department":  s.Department,
		"cgpa":        s.CGPA,
		"email":       s.Email,
		"phone":       s.Phone,
	})
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}
