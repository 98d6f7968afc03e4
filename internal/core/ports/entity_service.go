package ports

import (
	"context"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// StudentInput holds every mutable student field. Updates replace all of them.
type StudentInput struct {
	Name       string
	RollNumber string
	Department string
	CGPA       float64
	Email      string
	Phone      string
}

// CompanyInput holds every mutable company field.
type CompanyInput struct {
	Name     string
	Domain   string
	Package  float64
	Location string
	Website  *string
}

// DriveInput holds the caller-supplied drive fields. The company name is
// resolved from CompanyID by the service.
type DriveInput struct {
	CompanyID           string
	Date                string
	EligibleDepartments []string
	Role                string
	Description         *string
}

// OfferInput holds the caller-supplied offer fields. Student and company
// names are resolved by the service.
type OfferInput struct {
	StudentID string
	CompanyID string
	Package   float64
	Role      string
	Date      string
}

type StudentService interface {
	Create(ctx context.Context, input StudentInput) (*domain.Student, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}

type CompanyService interface {
	Create(ctx context.Context, input CompanyInput) (*domain.Company, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Update(ctx context.Context, id string, input CompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}

type DriveService interface {
	Create(ctx context.Context, input DriveInput) (*domain.Drive, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Drive, error)
	Get(ctx context.Context, id string) (*domain.Drive, error)
	Update(ctx context.Context, id string, input DriveInput) (*domain.Drive, error)
	Delete(ctx context.Context, id string) error
}

type OfferService interface {
	Create(ctx context.Context, input OfferInput) (*domain.Offer, error)
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Offer, error)
	Get(ctx context.Context, id string) (*domain.Offer, error)
	Delete(ctx context.Context, id string) error
}
