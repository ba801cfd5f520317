package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/dropship-gateway/tools/dashgen/dashboards"
	"github.com/donaldgifford/dropship-gateway/tools/dashgen/rules"
	"github.com/donaldgifford/dropship-gateway/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "dsg-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Dropship Gateway Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 5 rows.
	assert.Len(t, dash.Panels, 5)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 16, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestValidate_UnknownMetric(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Validating against an empty metric set must flag every query.
	result := validate.Dashboard(dash, map[string]bool{})
	assert.False(t, result.Ok())
	assert.NotEmpty(t, result.Errors)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "dsg-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "dsg-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"dsg:http_requests:rate5m",
		"dsg:http_errors:rate5m",
		"dsg:partner_api_calls:rate5m",
		"dsg:partner_api_errors:rate5m",
		"dsg:orders_submitted:rate5m",
		"dsg:lines_skipped:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "dsg-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "dsg-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"DsgDown",
		"DsgReadinessDown",
		"DsgHighErrorRate",
		"DsgPartnerErrors",
		"DsgRateLimitSaturation",
		"DsgQueueBacklog",
		"DsgOrderRejections",
		"DsgVariantDriftSpike",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	dashPath := filepath.Join(dir, "grafana", "data", "dsg-overview.json")
	dashJSON, err := os.ReadFile(dashPath)
	require.NoError(t, err)
	assert.Contains(t, string(dashJSON), `"dsg-overview"`)

	for _, name := range []string{"dsg-recording-rules.yaml", "dsg-alerts.yaml"} {
		raw, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(raw), generatedHeader),
			"%s missing generated header", name)
	}
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	// Validate-only must not write anything.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
