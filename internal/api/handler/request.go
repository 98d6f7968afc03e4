package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/core/domain"
)

// bindAndValidate decodes the JSON body into req and runs the validator.
// A malformed body is a 400, a body that fails validation a 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// listOptions reads the optional limit and offset query parameters.
func listOptions(c echo.Context) (domain.ListOptions, error) {
	var opts domain.ListOptions
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return opts, echo.NewHTTPError(http.StatusUnprocessableEntity, "limit must be a positive integer")
		}
		opts.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, echo.NewHTTPError(http.StatusUnprocessableEntity, "offset must be a non-negative integer")
		}
		opts.Offset = n
	}
	return opts, nil
}
