package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := FromViper(viper.New())

	if cfg.Port != "8090" {
		t.Errorf("expected port %q, got %q", "8090", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected queue size 100, got %d", cfg.MaxQueueSize)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("expected upload limit %d, got %d", 10<<20, cfg.MaxUploadBytes)
	}
	if cfg.MaxLineBytes != 1<<20 {
		t.Errorf("expected line limit %d, got %d", 1<<20, cfg.MaxLineBytes)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected job ttl 1h, got %s", cfg.JobTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SVGPATHS_PORT", "9000")
	t.Setenv("SVGPATHS_API_KEY", "secret")
	t.Setenv("SVGPATHS_WORKER_COUNT", "8")
	t.Setenv("SVGPATHS_JOB_TTL", "15m")
	t.Setenv("SVGPATHS_LOG_LEVEL", "DEBUG")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port %q, got %q", "9000", cfg.Port)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("expected api key from env, got %q", cfg.APIKey)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 15*time.Minute {
		t.Errorf("expected job ttl 15m, got %s", cfg.JobTTL)
	}
	lvl, err := cfg.Level()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", lvl)
	}
}

func TestLoad_ClampsNonPositive(t *testing.T) {
	v := viper.New()
	v.Set("worker_count", -1)
	v.Set("max_queue_size", 0)
	v.Set("max_line_bytes", -5)
	v.Set("job_ttl", "-1m")

	cfg := FromViper(v)
	if cfg.WorkerCount != 4 {
		t.Errorf("expected clamped worker count 4, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected clamped queue size 100, got %d", cfg.MaxQueueSize)
	}
	if cfg.MaxLineBytes != 1<<20 {
		t.Errorf("expected clamped line limit, got %d", cfg.MaxLineBytes)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected clamped ttl 1h, got %s", cfg.JobTTL)
	}
}

func TestValidate(t *testing.T) {
	cfg := FromViper(viper.New())
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when api key is missing")
	}

	cfg.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
