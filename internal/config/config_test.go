package config

import (
	"testing"
	"time"

	"github.com/futsalhq/leaderboard/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_STORAGE_DRIVER", "mongo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_STORAGE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "futsal-leaderboard-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if !cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=true by default")
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.LeaderboardWorkers != 4 {
		t.Fatalf("unexpected LeaderboardWorkers: %d", cfg.LeaderboardWorkers)
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=true by default")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_MemoryDriverAndOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("APP_STORAGE_DRIVER", "memory")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("LEADERBOARD_WORKERS", "8")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=false")
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.LeaderboardWorkers != 8 {
		t.Fatalf("unexpected LeaderboardWorkers: %d", cfg.LeaderboardWorkers)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_WorkerCountValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEADERBOARD_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for LEADERBOARD_WORKERS=0")
	}
}

func TestLoad_CacheTTLValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "-1s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative CACHE_TTL")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}
