package domain

import "time"

// Offer links one student to one company. StudentName and CompanyName are
// snapshots taken at creation and are never refreshed; offers have no update
// operation.
type Offer struct {
	ID          string
	StudentID   string
	StudentName string
	CompanyID   string
	CompanyName string
	Package     float64
	Role        string
	Date        string // YYYY-MM-DD
	CreatedAt   time.Time
}
