package main

import "errors"

// KnownMetrics is the set of metric names exported by carwatch plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"carwatch_http_request_duration_seconds": true,
	"carwatch_http_requests_total":           true,

	// Health metrics.
	"carwatch_healthz_up": true,
	"carwatch_readyz_up":  true,

	// Scoring metrics.
	"carwatch_scoring_listings_total":       true,
	"carwatch_scoring_run_duration_seconds": true,
	"carwatch_scoring_distribution":         true,
	"carwatch_scoring_cohort_level_total":   true,

	// Listing lifecycle metrics.
	"carwatch_upsert_listings_total":      true,
	"carwatch_deactivated_listings_total": true,

	// Scheduler metrics.
	"carwatch_scheduler_next_scoring_timestamp":    true,
	"carwatch_scheduler_next_deactivate_timestamp": true,

	// Recording rules.
	"carwatch:http_requests:rate5m":    true,
	"carwatch:http_errors:rate5m":      true,
	"carwatch:scoring_listings:rate5m": true,
	"carwatch:upsert_listings:rate5m":  true,

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
