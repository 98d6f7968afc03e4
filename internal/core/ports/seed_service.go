package ports

import "context"

// SeedResult describes the outcome of a seed run. When AlreadySeeded is true
// nothing was written and the counts are zero.
type SeedResult struct {
	AlreadySeeded bool
	Message       string
	Students      int
	Companies     int
	Drives        int
	Offers        int
}

// SeedService populates an empty store with sample data.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
