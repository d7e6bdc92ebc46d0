package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "dealradar", cfg.Database.Name)
				assert.Equal(t, "radar", cfg.Database.User)
				assert.Equal(t, "none", cfg.LLM.Provider)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
				assert.Equal(t, 1.0, cfg.Fetch.RateLimit.PerSecond)
				assert.Equal(t, 2, cfg.Fetch.RateLimit.Burst)
				assert.Equal(t, int64(2000), cfg.Fetch.RateLimit.DailyLimit)
				assert.Equal(t, 0.4, cfg.Verification.MinConfidence)
				assert.Equal(t, 0.85, cfg.Dedupe.Threshold)
				assert.Equal(t, 75.0, cfg.Pipeline.NotifyThreshold)
				assert.Equal(t, 7*24*time.Hour, cfg.Pipeline.OfferTTL)
				assert.Equal(t, 200, cfg.Pipeline.CatalogScanLimit)
				assert.Equal(t, 4, cfg.Pipeline.Workers)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.SweepInterval)
				assert.Equal(t, 6*time.Hour, cfg.Schedule.CleanupInterval)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "feed sources parsed",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
sources:
  - name: morning-feed
    url: https://feeds.example.com/deals
    api_key: abc123
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				require.Len(t, cfg.Sources, 1)
				assert.Equal(t, "morning-feed", cfg.Sources[0].Name)
				assert.Equal(t, "https://feeds.example.com/deals", cfg.Sources[0].URL)
				assert.Equal(t, "abc123", cfg.Sources[0].APIKey)
			},
		},
		{
			name: "feed source missing url",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
sources:
  - name: morning-feed
`,
			wantErr: "sources[0].url is required",
		},
		{
			name: "telemetry parsed with defaults",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
telemetry:
  enabled: true
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0.0001)
			},
		},
		{
			name: "telemetry sample ratio out of range",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
telemetry:
  enabled: true
  sample_ratio: 1.5
`,
			wantErr: "telemetry.sample_ratio must be between 0 and 1",
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
  password: ${TEST_DB_PASSWORD}
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "s3cret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "s3cret", cfg.Database.Password)
			},
		},
		{
			name: "openai provider requires endpoint and model",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
llm:
  provider: openai_compat
`,
			wantErr: "llm.endpoint is required",
		},
		{
			name: "valid openai provider",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
llm:
  provider: openai_compat
  endpoint: https://api.groq.com/openai
  model: llama-3.1-8b-instant
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "openai_compat", cfg.LLM.Provider)
				assert.Equal(t, "https://api.groq.com/openai", cfg.LLM.Endpoint)
			},
		},
		{
			name: "unknown llm provider",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
llm:
  provider: bard
`,
			wantErr: "llm.provider must be one of",
		},
		{
			name: "missing database fields",
			yaml: `
server:
  port: 9090
`,
			wantErr: "database.host is required",
		},
		{
			name: "min confidence out of range",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
verification:
  min_confidence: 1.5
`,
			wantErr: "verification.min_confidence must be between 0 and 1",
		},
		{
			name: "discord enabled without webhook url",
			yaml: `
database:
  host: localhost
  name: dealradar
  user: radar
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "dealradar",
		User:     "radar",
		Password: "pw",
		SSLMode:  "require",
	}
	assert.Equal(
		t,
		"host=db.internal port=5433 dbname=dealradar user=radar password=pw sslmode=require",
		d.DSN(),
	)
}
