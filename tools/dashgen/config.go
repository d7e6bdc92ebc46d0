package main

import "errors"

// KnownMetrics is the set of metric names exported by dealradar plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dealradar_http_request_duration_seconds": true,
	"dealradar_http_requests_total":           true,

	// Health metrics.
	"dealradar_healthz_up": true,
	"dealradar_readyz_up":  true,

	// Pipeline metrics.
	"dealradar_messages_processed_total":   true,
	"dealradar_message_failures_total":     true,
	"dealradar_candidates_extracted_total": true,
	"dealradar_duplicates_skipped_total":   true,
	"dealradar_sweep_duration_seconds":     true,

	// Verification metrics.
	"dealradar_verifications_total":   true,
	"dealradar_deals_persisted_total": true,
	"dealradar_deals_dropped_total":   true,

	// Scoring metrics.
	"dealradar_scoring_distribution": true,

	// Official page fetch metrics.
	"dealradar_fetch_calls_total":            true,
	"dealradar_fetch_daily_usage":            true,
	"dealradar_fetch_daily_limit_hits_total": true,

	// Cleanup metrics.
	"dealradar_expired_deals_deleted_total": true,

	// Notification metrics.
	"dealradar_notifications_sent_total":    true,
	"dealradar_notification_failures_total": true,

	// Recording rules.
	"dealradar:http_requests:rate5m":    true,
	"dealradar:http_errors:rate5m":      true,
	"dealradar:messages:rate5m":         true,
	"dealradar:message_failures:rate5m": true,
	"dealradar:deals_persisted:rate5m":  true,
	"dealradar:fetch_calls:rate5m":      true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
