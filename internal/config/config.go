// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Fetch         FetchConfig         `yaml:"fetch"`
	LLM           LLMConfig           `yaml:"llm"`
	Verification  VerificationConfig  `yaml:"verification"`
	Dedupe        DedupeConfig        `yaml:"dedupe"`
	Pipeline      PipelineConfig      `yaml:"pipeline"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Sources       []SourceConfig      `yaml:"sources"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// FetchConfig defines merchant page fetch settings.
type FetchConfig struct {
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines page-fetch rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// LLMConfig defines the optional model-backed classifier settings.
type LLMConfig struct {
	Provider string `yaml:"provider"` // none, openai_compat
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// VerificationConfig defines verification pipeline settings.
type VerificationConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
}

// DedupeConfig defines duplicate detection settings.
type DedupeConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// PipelineConfig defines engine behavior.
type PipelineConfig struct {
	NotifyThreshold  float64       `yaml:"notify_threshold"`
	OfferTTL         time.Duration `yaml:"offer_ttl"`
	CatalogScanLimit int           `yaml:"catalog_scan_limit"`
	Workers          int           `yaml:"workers"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	SweepInterval   time.Duration `yaml:"sweep_interval"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// SourceConfig defines one deal feed swept on the sweep schedule.
type SourceConfig struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines OTLP trace export settings.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`     // host:port of an OTLP gRPC collector
	SampleRatio float64 `yaml:"sample_ratio"` // 0..1, applied to root spans
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyFetchDefaults(&cfg.Fetch)
	applyLLMDefaults(&cfg.LLM)
	applyVerificationDefaults(&cfg.Verification)
	applyDedupeDefaults(&cfg.Dedupe)
	applyPipelineDefaults(&cfg.Pipeline)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyFetchDefaults(f *FetchConfig) {
	if f.Timeout == 0 {
		f.Timeout = 20 * time.Second
	}
	if f.RateLimit.PerSecond == 0 {
		f.RateLimit.PerSecond = 1.0
	}
	if f.RateLimit.Burst == 0 {
		f.RateLimit.Burst = 2
	}
	if f.RateLimit.DailyLimit == 0 {
		f.RateLimit.DailyLimit = 2000
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Provider == "" {
		l.Provider = "none"
	}
}

func applyVerificationDefaults(v *VerificationConfig) {
	if v.MinConfidence == 0 {
		v.MinConfidence = 0.4
	}
}

func applyDedupeDefaults(d *DedupeConfig) {
	if d.Threshold == 0 {
		d.Threshold = 0.85
	}
}

func applyPipelineDefaults(p *PipelineConfig) {
	if p.NotifyThreshold == 0 {
		p.NotifyThreshold = 75
	}
	if p.OfferTTL == 0 {
		p.OfferTTL = 7 * 24 * time.Hour
	}
	if p.CatalogScanLimit == 0 {
		p.CatalogScanLimit = 200
	}
	if p.Workers == 0 {
		p.Workers = 4
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SweepInterval == 0 {
		s.SweepInterval = 30 * time.Minute
	}
	if s.CleanupInterval == 0 {
		s.CleanupInterval = 6 * time.Hour
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.LLM.Provider {
	case "none":
	case "openai", "openai_compat":
		if cfg.LLM.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.endpoint is required when provider is %s", cfg.LLM.Provider),
			)
		}
		if cfg.LLM.Model == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.model is required when provider is %s", cfg.LLM.Provider),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"llm.provider must be one of: none, openai, openai_compat (got %q)",
				cfg.LLM.Provider,
			),
		)
	}

	if cfg.Verification.MinConfidence < 0 || cfg.Verification.MinConfidence > 1 {
		errs = append(errs, fmt.Errorf(
			"verification.min_confidence must be between 0 and 1 (got %v)",
			cfg.Verification.MinConfidence,
		))
	}

	if cfg.Dedupe.Threshold < 0 || cfg.Dedupe.Threshold > 1 {
		errs = append(errs, fmt.Errorf(
			"dedupe.threshold must be between 0 and 1 (got %v)",
			cfg.Dedupe.Threshold,
		))
	}

	for i := range cfg.Sources {
		if cfg.Sources[i].Name == "" {
			errs = append(errs, fmt.Errorf("sources[%d].name is required", i))
		}
		if cfg.Sources[i].URL == "" {
			errs = append(errs, fmt.Errorf("sources[%d].url is required", i))
		}
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"telemetry.sample_ratio must be between 0 and 1 (got %v)",
			cfg.Telemetry.SampleRatio,
		))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf(
			"notifications.discord.webhook_url is required when discord is enabled",
		))
	}

	return errors.Join(errs...)
}
