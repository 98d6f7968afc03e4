package ports

import (
	"context"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// AnalyticsService computes read-only aggregates over the placement data.
type AnalyticsService interface {
	DepartmentPlacements(ctx context.Context) (*domain.Series[int], error)
	CompanyPackages(ctx context.Context) (*domain.Series[float64], error)
	YearlyTrends(ctx context.Context) (*domain.Series[int], error)
	RoleDistribution(ctx context.Context) (*domain.Series[int], error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
