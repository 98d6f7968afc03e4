package handler

import (
	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// Request → service input. The validator has already rejected nil required
// pointers, so the dereferences below are safe.

func (r studentRequest) toInput() ports.StudentInput {
	return ports.StudentInput{
		Name:       r.Name,
		RollNumber: r.RollNumber,
		Department: r.Department,
		CGPA:       *r.CGPA,
		Email:      r.Email,
		Phone:      r.Phone,
	}
}

func (r companyRequest) toInput() ports.CompanyInput {
	return ports.CompanyInput{
		Name:     r.Name,
		Domain:   r.Domain,
		Package:  *r.Package,
		Location: r.Location,
		Website:  r.Website,
	}
}

func (r driveRequest) toInput() ports.DriveInput {
	return ports.DriveInput{
		CompanyID:           r.CompanyID,
		Date:                r.Date,
		EligibleDepartments: r.EligibleDepartments,
		Role:                r.Role,
		Description:         r.Description,
	}
}

func (r offerRequest) toInput() ports.OfferInput {
	return ports.OfferInput{
		StudentID: r.StudentID,
		CompanyID: r.CompanyID,
		Package:   *r.Package,
		Role:      r.Role,
		Date:      r.Date,
	}
}

// Domain → response.

func toStudentResponse(s *domain.Student) studentResponse {
	return studentResponse{
		ID:         s.ID,
		Name:       s.Name,
		RollNumber: s.RollNumber,
		Department: s.Department,
		CGPA:       s.CGPA,
		Email:      s.Email,
		Phone:      s.Phone,
		CreatedAt:  s.CreatedAt,
	}
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Domain:    c.Domain,
		Package:   c.Package,
		Location:  c.Location,
		Website:   c.Website,
		CreatedAt: c.CreatedAt,
	}
}

func toDriveResponse(d *domain.Drive) driveResponse {
	depts := d.EligibleDepartments
	if depts == nil {
		depts = []string{}
	}
	return driveResponse{
		ID:                  d.ID,
		CompanyID:           d.CompanyID,
		CompanyName:         d.CompanyName,
		Date:                d.Date,
		EligibleDepartments: depts,
		Role:                d.Role,
		Description:         d.Description,
		CreatedAt:           d.CreatedAt,
	}
}

func toOfferResponse(o *domain.Offer) offerResponse {
	return offerResponse{
		ID:          o.ID,
		StudentID:   o.StudentID,
		StudentName: o.StudentName,
		CompanyID:   o.CompanyID,
		CompanyName: o.CompanyName,
		Package:     o.Package,
		Role:        o.Role,
		Date:        o.Date,
		CreatedAt:   o.CreatedAt,
	}
}

// mapAll converts a page of records, never returning nil so an empty page
// serialises as [].
func mapAll[E any, R any](items []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func toSeedResponse(r *ports.SeedResult) seedResponse {
	if r.AlreadySeeded {
		return seedResponse{Message: r.Message}
	}
	return seedResponse{
		Message:   r.Message,
		Students:  r.Students,
		Companies: r.Companies,
		Drives:    r.Drives,
		Offers:    r.Offers,
	}
}
