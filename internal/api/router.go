package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/placementiq/placement-api/docs"
	"github.com/placementiq/placement-api/internal/api/handler"
	"github.com/placementiq/placement-api/internal/api/middleware"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// Options configures the HTTP surface.
type Options struct {
	APIPrefix   string
	CORSOrigins []string
	// AuthRateLimit is the requests per second allowed per client IP on the
	// /auth routes. Zero disables the limiter.
	AuthRateLimit float64
	Logger        zerolog.Logger
	// Registerer and Gatherer back the HTTP metrics and /metrics. They
	// default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Services are the core ports the handlers call.
type Services struct {
	Auth      ports.AuthService
	Students  ports.StudentService
	Companies ports.CompanyService
	Drives    ports.DriveService
	Offers    ports.OfferService
	Analytics ports.AnalyticsService
	Seed      ports.SeedService
	// Readiness lists the dependency probes for /health/ready.
	Readiness map[string]handler.CheckFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options, svc Services) *echo.Echo {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowCredentials: true,
		// Browsers refuse "*" alongside credentials, so the request origin is
		// echoed back instead.
		UnsafeWildcardOriginWithAllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		// AllowHeaders is left empty so preflights echo back the requested
		// headers; a literal "*" never covers Authorization.
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "placementiq",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no prefix, no auth) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(svc.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	api := e.Group(opts.APIPrefix)
	requireAuth := middleware.Auth(svc.Auth)

	api.GET("", handler.Index)
	api.GET("/", handler.Index)

	authHandler := handler.NewAuthHandler(svc.Auth)
	authGroup := api.Group("/auth")
	if opts.AuthRateLimit > 0 {
		authGroup.Use(authRateLimiter(opts.AuthRateLimit))
	}
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, requireAuth)

	students := handler.NewStudentHandler(svc.Students)
	api.POST("/students", students.Create, requireAuth)
	api.GET("/students", students.List)
	api.GET("/students/:id", students.Get)
	api.PUT("/students/:id", students.Update, requireAuth)
	api.DELETE("/students/:id", students.Delete, requireAuth)

	companies := handler.NewCompanyHandler(svc.Companies)
	api.POST("/companies", companies.Create, requireAuth)
	api.GET("/companies", companies.List)
	api.GET("/companies/:id", companies.Get)
	api.PUT("/companies/:id", companies.Update, requireAuth)
	api.DELETE("/companies/:id", companies.Delete, requireAuth)

	drives := handler.NewDriveHandler(svc.Drives)
	api.POST("/drives", drives.Create, requireAuth)
	api.GET("/drives", drives.List)
	api.GET("/drives/:id", drives.Get)
	api.PUT("/drives/:id", drives.Update, requireAuth)
	api.DELETE("/drives/:id", drives.Delete, requireAuth)

	offers := handler.NewOfferHandler(svc.Offers)
	api.POST("/offers", offers.Create, requireAuth)
	api.GET("/offers", offers.List)
	api.GET("/offers/:id", offers.Get)
	api.DELETE("/offers/:id", offers.Delete, requireAuth)

	analytics := handler.NewAnalyticsHandler(svc.Analytics)
	api.GET("/analytics/department-placements", analytics.DepartmentPlacements)
	api.GET("/analytics/company-packages", analytics.CompanyPackages)
	api.GET("/analytics/yearly-trends", analytics.YearlyTrends)
	api.GET("/analytics/role-distribution", analytics.RoleDistribution)
	api.GET("/analytics/stats", analytics.Stats)

	api.POST("/seed", handler.NewSeedHandler(svc.Seed).Seed)

	return e
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// authRateLimiter throttles credential endpoints per client IP.
func authRateLimiter(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		},
	})
}
