package domain

import "time"

// Company is a recruiter. Package is the annual compensation it advertises.
type Company struct {
	ID        string
	Name      string
	Domain    string
	Package   float64
	Location  string
	Website   *string
	CreatedAt time.Time
}
