package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8000"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	APIPrefix string `env:"API_PREFIX, default=/api"`
	AutoSeed  bool   `env:"AUTO_SEED, default=true"`

	Auth      AuthConfig
	CORS      CORSConfig
	Analytics AnalyticsConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type AuthConfig struct {
	JWTSecret  string `env:"JWT_SECRET_KEY, required"`
	BcryptCost int    `env:"BCRYPT_COST,    default=10"`
	// RateLimit is the sustained requests per second allowed per client IP
	// on the /auth routes.
	RateLimit float64 `env:"AUTH_RATE_LIMIT, default=5"`
}

type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS, default=*"`
}

type AnalyticsConfig struct {
	CacheTTL time.Duration `env:"ANALYTICS_CACHE_TTL, default=30s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URL, default=mongodb://localhost:27017"`
	Database string `env:"DB_NAME,   default=placementiq_db"`
}

// RedisConfig is optional. An empty Addr disables the analytics cache and the
// distributed seed lock.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
