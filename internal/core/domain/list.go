package domain

const (
	// MaxPageSize caps every list endpoint.
	MaxPageSize = 1000
	// AnalyticsScanLimit bounds how many documents per collection an analytics
	// computation reads.
	AnalyticsScanLimit = 1000
)

// ListOptions selects a window of a collection in insertion order.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps the window to [1, MaxPageSize] and a non-negative offset.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 || o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}
