package main

import "errors"

// KnownMetrics is the set of metric names exported by the dropship gateway
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dsg_http_request_duration_seconds": true,
	"dsg_http_requests_total":           true,
	"dsg_http_panics_total":             true,

	// Health metrics.
	"dsg_healthz_up": true,
	"dsg_readyz_up":  true,

	// Partner API metrics.
	"dsg_partner_api_calls_total":       true,
	"dsg_partner_api_errors_total":      true,
	"dsg_partner_rate_limit_hits_total": true,
	"dsg_partner_auth_logins_total":     true,
	"dsg_partner_auth_refreshes_total":  true,

	// Search cache metrics.
	"dsg_search_cache_hits_total":   true,
	"dsg_search_cache_misses_total": true,

	// Request lane metrics.
	"dsg_request_queue_depth":        true,
	"dsg_request_queue_wait_seconds": true,

	// Order pipeline metrics.
	"dsg_orders_submitted_total":    true,
	"dsg_orders_rejected_total":     true,
	"dsg_order_lines_skipped_total": true,
	"dsg_variant_drift_total":       true,

	// Recording rules.
	"dsg:http_requests:rate5m":      true,
	"dsg:http_errors:rate5m":        true,
	"dsg:partner_api_calls:rate5m":  true,
	"dsg:partner_api_errors:rate5m": true,
	"dsg:orders_submitted:rate5m":   true,
	"dsg:lines_skipped:rate5m":      true,

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
