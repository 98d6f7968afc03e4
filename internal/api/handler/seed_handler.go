package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/ports"
)

type SeedHandler struct {
	service ports.SeedService
}

func NewSeedHandler(service ports.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed fills an empty database with sample data. It does nothing once any
// student exists.
//
// @Summary      Seed sample data
// @Tags         seed
// @Produce      json
// @Success      200  {object}  seedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := h.service.Seed(c.Request().Context())
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return err
	}

	if res.AlreadySeeded {
		metrics.SeedRunsTotal.WithLabelValues("skipped").Inc()
	} else {
		metrics.SeedRunsTotal.WithLabelValues("seeded").Inc()
	}
	return c.JSON(http.StatusOK, toSeedResponse(res))
}
