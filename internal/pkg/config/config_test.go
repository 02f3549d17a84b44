package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func processWith(t *testing.T, env map[string]string) *Config {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	if err != nil {
		t.Fatalf("process config: %v", err)
	}
	return &cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := processWith(t, map[string]string{})

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %s", cfg.Env)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.Seed {
		t.Fatalf("seeding must be off by default")
	}
	if cfg.NotifyWorkers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.NotifyWorkers)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" || cfg.Mongo.Database != "marketplace" {
		t.Fatalf("unexpected mongo defaults: %+v", cfg.Mongo)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 0 {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := processWith(t, map[string]string{
		"PORT":           "8080",
		"JWT_SECRET":     "supersecret",
		"TOKEN_TTL":      "30m",
		"SEED":           "true",
		"NOTIFY_WORKERS": "8",
		"MONGO_DB":       "marketplace_test",
		"REDIS_DB":       "2",
	})

	if cfg.Port != "8080" {
		t.Fatalf("port override ignored: %s", cfg.Port)
	}
	if cfg.JWTSecret != "supersecret" {
		t.Fatalf("jwt secret not read")
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %s", cfg.TokenTTL)
	}
	if !cfg.Seed || cfg.NotifyWorkers != 8 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Mongo.Database != "marketplace_test" || cfg.Redis.DB != 2 {
		t.Fatalf("store overrides ignored: %+v %+v", cfg.Mongo, cfg.Redis)
	}
}
