package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/middleware"
	"github.com/placementiq/placement-api/internal/core/domain"
)

// currentUser returns the user injected by the Auth middleware. A missing
// user means the route was registered without the middleware, which is
// treated like any other authentication failure.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
