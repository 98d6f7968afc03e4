package domain

import "time"

// Student is a candidate tracked for placement.
type Student struct {
	ID         string
	Name       string
	RollNumber string
	Department string
	CGPA       float64
	Email      string
	Phone      string
	CreatedAt  time.Time
}
