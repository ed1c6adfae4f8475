package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func load(t *testing.T, env map[string]string) *Config {
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
	cfg := load(t, map[string]string{})

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.AccessTTL != time.Hour {
		t.Fatalf("unexpected access TTL: %v", cfg.AccessTTL)
	}
	if cfg.RefreshTTL != 168*time.Hour {
		t.Fatalf("unexpected refresh TTL: %v", cfg.RefreshTTL)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" || cfg.Mongo.Database != "auth_service" {
		t.Fatalf("unexpected mongo config: %+v", cfg.Mongo)
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := load(t, map[string]string{
		"JWT_SECRET":        "s3cret",
		"ACCESS_TOKEN_TTL":  "30m",
		"REFRESH_TOKEN_TTL": "72h",
		"MONGO_DB":          "auth_test",
	})

	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected secret: %s", cfg.JWTSecret)
	}
	if cfg.AccessTTL != 30*time.Minute || cfg.RefreshTTL != 72*time.Hour {
		t.Fatalf("unexpected TTLs: %v %v", cfg.AccessTTL, cfg.RefreshTTL)
	}
	if cfg.Mongo.Database != "auth_test" {
		t.Fatalf("unexpected mongo db: %s", cfg.Mongo.Database)
	}
}
