package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.StoreBackend != BackendMemory || cfg.IdempotencyBackend != BackendMemory {
		t.Errorf("backends must default to memory: %+v", cfg)
	}
	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Errorf("IdempotencyTTL = %v, want 24h", cfg.IdempotencyTTL)
	}
	if cfg.RateLimitRPS != 0 || cfg.JWTSecret != "" {
		t.Errorf("rate limiting and auth must be off by default: %+v", cfg)
	}
	if cfg.Mongo.Database != "registry" || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected nested defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development env")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                "9090",
		"ENV":                 "production",
		"STORE_BACKEND":       "mongo",
		"IDEMPOTENCY_BACKEND": "redis",
		"IDEMPOTENCY_TTL":     "90m",
		"RATE_LIMIT_RPS":      "2.5",
		"REDIS_DB":            "3",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.IsDevelopment() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.StoreBackend != BackendMongo || cfg.IdempotencyBackend != BackendRedis {
		t.Errorf("unexpected backends: %+v", cfg)
	}
	if cfg.IdempotencyTTL != 90*time.Minute || cfg.RateLimitRPS != 2.5 || cfg.Redis.DB != 3 {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	tests := []map[string]string{
		{"STORE_BACKEND": "postgres"},
		{"IDEMPOTENCY_BACKEND": "mongo"},
		{"RATE_LIMIT_RPS": "-1"},
		{"REDIS_DB": "not-a-number"},
	}
	for _, env := range tests {
		if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Errorf("expected error for %v", env)
		}
	}
}
