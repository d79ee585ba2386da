package config

import (
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.Channel != "bakery:orders" {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if cfg.Queue.Buffer != 64 {
		t.Fatalf("expected queue buffer 64, got %d", cfg.Queue.Buffer)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(envconfig.MapLookuper(map[string]string{
		"PORT":       "9090",
		"ENV":        "production",
		"JWT_SECRET": "s3cret",
		"TOKEN_TTL":  "30m",
		"REDIS_ADDR": "localhost:6379",
		"REDIS_DB":   "2",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.JWTSecret != "s3cret" || cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production env")
	}
}

func TestLoadFrom_BadDuration(t *testing.T) {
	if _, err := LoadFrom(envconfig.MapLookuper(map[string]string{"TOKEN_TTL": "soon"})); err == nil {
		t.Fatalf("expected error for bad duration")
	}
}
