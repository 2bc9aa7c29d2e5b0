package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SVGPATHS_PORT.
const EnvPrefix = "SVGPATHS"

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Input limits
	MaxUploadBytes int64
	MaxLineBytes   int

	// Job state
	JobTTL time.Duration

	// Latency stats window
	StatsWindow time.Duration

	LogLevel string
}

const (
	defaultPort           = "8090"
	defaultWorkerCount    = 4
	defaultMaxQueueSize   = 100
	defaultMaxUploadBytes = 10 << 20
	defaultMaxLineBytes   = 1 << 20
	defaultJobTTL         = 1 * time.Hour
	defaultStatsWindow    = 1 * time.Hour
	defaultLogLevel       = "info"
)

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("api_key", "")
	v.SetDefault("worker_count", defaultWorkerCount)
	v.SetDefault("max_queue_size", defaultMaxQueueSize)
	v.SetDefault("max_upload_bytes", defaultMaxUploadBytes)
	v.SetDefault("max_line_bytes", defaultMaxLineBytes)
	v.SetDefault("job_ttl", defaultJobTTL)
	v.SetDefault("stats_window", defaultStatsWindow)
	v.SetDefault("log_level", defaultLogLevel)
}

// Load reads the configuration from SVGPATHS_* environment variables.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v, which may also carry bound flags.
// Non-positive numbers fall back to their defaults.
func FromViper(v *viper.Viper) Config {
	SetDefaults(v)

	cfg := Config{
		Port:   v.GetString("port"),
		APIKey: v.GetString("api_key"),

		WorkerCount:  v.GetInt("worker_count"),
		MaxQueueSize: v.GetInt("max_queue_size"),

		MaxUploadBytes: v.GetInt64("max_upload_bytes"),
		MaxLineBytes:   v.GetInt("max_line_bytes"),

		JobTTL:      v.GetDuration("job_ttl"),
		StatsWindow: v.GetDuration("stats_window"),

		LogLevel: strings.ToLower(v.GetString("log_level")),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = defaultMaxQueueSize
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = defaultMaxLineBytes
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = defaultJobTTL
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = defaultStatsWindow
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s_API_KEY is required", EnvPrefix)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
