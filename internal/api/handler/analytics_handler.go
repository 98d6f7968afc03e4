package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/core/ports"
)

// AnalyticsHandler serves the public dashboard aggregates.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// DepartmentPlacements handles GET /analytics/department-placements.
//
// @Summary      Placed students per department
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  object{labels=[]string,values=[]int}
// @Router       /analytics/department-placements [get]
func (h *AnalyticsHandler) DepartmentPlacements(c echo.Context) error {
	series, err := h.service.DepartmentPlacements(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// CompanyPackages handles GET /analytics/company-packages.
//
// @Summary      Advertised package per company name
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  object{labels=[]string,values=[]number}
// @Router       /analytics/company-packages [get]
func (h *AnalyticsHandler) CompanyPackages(c echo.Context) error {
	series, err := h.service.CompanyPackages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// YearlyTrends handles GET /analytics/yearly-trends.
//
// @Summary      Offers per year
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  object{labels=[]string,values=[]int}
// @Router       /analytics/yearly-trends [get]
func (h *AnalyticsHandler) YearlyTrends(c echo.Context) error {
	series, err := h.service.YearlyTrends(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// RoleDistribution handles GET /analytics/role-distribution.
//
// @Summary      Offers per role
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  object{labels=[]string,values=[]int}
// @Router       /analytics/role-distribution [get]
func (h *AnalyticsHandler) RoleDistribution(c echo.Context) error {
	series, err := h.service.RoleDistribution(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// Stats handles GET /analytics/stats.
//
// @Summary      Dashboard totals, placement rate and average package
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Router       /analytics/stats [get]
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
