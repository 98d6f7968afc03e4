package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/domain"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// UserKey is the echo context key holding the authenticated *domain.User.
const UserKey = "user"

// Auth validates the bearer token and injects the resolved user into the
// context. Every failure is domain.ErrUnauthorized so the client cannot tell
// which check rejected it.
func Auth(authn ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return domain.ErrUnauthorized
			}

			user, err := authn.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}
