package domain

import "time"

// Drive is a recruitment event run by a company for a set of departments.
//
// CompanyName is a point-in-time copy of the company's name taken when the
// drive is created or updated. Renaming or deleting the company later does not
// touch it.
type Drive struct {
	ID                  string
	CompanyID           string
	CompanyName         string
	Date                string // YYYY-MM-DD
	EligibleDepartments []string
	Role                string
	Description         *string
	CreatedAt           time.Time
}
