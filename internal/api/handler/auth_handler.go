package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/ports"
)

const tokenTypeBearer = "bearer"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a bearer token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}

	metrics.AuthRequestsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: res.Token, TokenType: tokenTypeBearer})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}

	metrics.AuthRequestsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: res.Token, TokenType: tokenTypeBearer})
}

// Me returns the identity behind the presented token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Username: user.Username, Email: user.Email})
}
