package domain

// Series is a chart-ready aggregate: Labels[i] pairs with Values[i].
type Series[T int | float64] struct {
	Labels []string `json:"labels"`
	Values []T      `json:"values"`
}

// Stats is the dashboard summary over every collection.
type Stats struct {
	TotalStudents  int64   `json:"total_students"`
	TotalCompanies int64   `json:"total_companies"`
	TotalDrives    int64   `json:"total_drives"`
	TotalOffers    int64   `json:"total_offers"`
	PlacedStudents int     `json:"placed_students"`
	PlacementRate  float64 `json:"placement_rate"`
	AveragePackage float64 `json:"average_package"`
}
