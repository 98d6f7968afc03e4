package cmd

import (
	"context"
	"fmt"

	"github.com/placementiq/placement-api/internal/api/handler"
	"github.com/placementiq/placement-api/internal/core/service"
	"github.com/placementiq/placement-api/internal/infrastructure/config"
	"github.com/placementiq/placement-api/internal/infrastructure/db/mongo"
	"github.com/placementiq/placement-api/internal/infrastructure/db/redis"
	"github.com/placementiq/placement-api/pkg/logger"
)

// app holds the wired dependencies shared by the subcommands.
type app struct {
	cfg *config.Config

	closers []func(context.Context) error

	auth      *service.AuthService
	students  *service.StudentService
	companies *service.CompanyService
	drives    *service.DriveService
	offers    *service.OfferService
	analytics *service.AnalyticsService
	seed      *service.SeedService

	readiness map[string]handler.CheckFunc
}

// loadConfig reads the environment and initialises the process logger, which
// is retrieved afterwards with logger.Get.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "placementiq-api",
	})
	return cfg, nil
}

// newApp connects to the stores and builds every service. Redis is optional:
// when REDIS_ADDR is unset or unreachable the analytics cache and seed lock
// fall back to no-ops.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	log := logger.Get()

	a := &app{cfg: cfg, readiness: map[string]handler.CheckFunc{}}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	a.closers = append(a.closers, client.Disconnect)
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = a.close(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	a.readiness["mongodb"] = func(ctx context.Context) error { return mongo.Ping(ctx, db) }

	var (
		cache service.AnalyticsCache = service.NopCache{}
		lock  service.SeedLock       = service.NopLock{}
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, analytics cache disabled")
		} else {
			cache = redis.NewAnalyticsCache(rdb, cfg.Analytics.CacheTTL)
			lock = redis.NewSeedLock(rdb)
			a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
			a.readiness["redis"] = func(ctx context.Context) error { return redis.Ping(ctx, rdb) }
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
		}
	}

	studentRepo := mongo.NewStudentRepository(db)
	companyRepo := mongo.NewCompanyRepository(db)
	driveRepo := mongo.NewDriveRepository(db)
	offerRepo := mongo.NewOfferRepository(db)

	a.auth = service.NewAuthService(mongo.NewAuthRepository(db), cfg.Auth.JWTSecret, service.TokenTTL,
		service.WithBcryptCost(cfg.Auth.BcryptCost))
	a.students = service.NewStudentService(studentRepo, cache, log)
	a.companies = service.NewCompanyService(companyRepo, cache, log)
	a.drives = service.NewDriveService(driveRepo, companyRepo, cache, log)
	a.offers = service.NewOfferService(offerRepo, studentRepo, companyRepo, cache, log)
	a.analytics = service.NewAnalyticsService(studentRepo, companyRepo, driveRepo, offerRepo, cache, log)
	a.seed = service.NewSeedService(studentRepo, companyRepo, driveRepo, offerRepo, lock, cache, log)

	return a, nil
}

// close releases connections in reverse order of acquisition.
func (a *app) close(ctx context.Context) error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
