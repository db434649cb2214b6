package main

import "errors"

// KnownMetrics is the set of metric names exported by repair-cost plus the
// recording rule names referenced in dashboards and alerts. Histogram series
// (_bucket, _sum, _count) resolve to their base name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"repair_cost_http_request_duration_seconds": true,
	"repair_cost_http_requests_total":           true,

	// Health metrics.
	"repair_cost_healthz_up": true,
	"repair_cost_readyz_up":  true,

	// Estimation metrics.
	"repair_cost_estimates_total":         true,
	"repair_cost_estimate_failures_total": true,
	"repair_cost_families_capped_total":   true,
	"repair_cost_unknown_codes_total":     true,

	// Recost metrics.
	"repair_cost_recost_duration_seconds": true,
	"repair_cost_recost_rows_total":       true,

	// Price table metrics.
	"repair_cost_price_table_entries": true,

	// Recording rules.
	"repair_cost:http_requests:rate5m":      true,
	"repair_cost:http_errors:rate5m":        true,
	"repair_cost:estimates:rate5m":          true,
	"repair_cost:estimate_failures:rate5m":  true,
	"repair_cost:recost_failed_rows:rate5m": true,

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
