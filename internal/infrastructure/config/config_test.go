package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET_KEY": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.APIPrefix != "/api" {
		t.Errorf("APIPrefix = %q, want /api", cfg.APIPrefix)
	}
	if !cfg.AutoSeed {
		t.Errorf("AutoSeed = false, want true")
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development environment by default")
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.RateLimit != 5 {
		t.Errorf("RateLimit = %v, want 5", cfg.Auth.RateLimit)
	}
	if len(cfg.CORS.Origins) != 1 || cfg.CORS.Origins[0] != "*" {
		t.Errorf("CORS origins = %v, want [*]", cfg.CORS.Origins)
	}
	if cfg.Analytics.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.Analytics.CacheTTL)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" || cfg.Mongo.Database != "placementiq_db" {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected Redis to be disabled by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET_KEY":      "s3cret",
		"PORT":                "9090",
		"ENV":                 "production",
		"AUTO_SEED":           "false",
		"CORS_ORIGINS":        "http://localhost:3000,https://placements.example.edu",
		"ANALYTICS_CACHE_TTL": "2m",
		"MONGO_URL":           "mongodb://mongo:27017",
		"DB_NAME":             "other",
		"REDIS_ADDR":          "redis:6379",
		"REDIS_DB":            "2",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Port != "9090" || cfg.IsDevelopment() || cfg.AutoSeed {
		t.Errorf("unexpected top-level config: %+v", cfg)
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "https://placements.example.edu" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORS.Origins)
	}
	if cfg.Analytics.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %v, want 2m", cfg.Analytics.CacheTTL)
	}
	if cfg.Mongo.URI != "mongodb://mongo:27017" || cfg.Mongo.Database != "other" {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when JWT_SECRET_KEY is unset")
	}
}
