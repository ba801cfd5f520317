package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing the partner API call rate.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Partner Calls Rate").
		Description("Partner API dispatches per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`dsg:partner_api_calls:rate5m`, "calls/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ErrorsByKind returns a timeseries panel breaking partner failures down
// by classification.
func ErrorsByKind() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Partner Errors by Kind").
		Description("Partner API failures per second by classification").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(dsg_partner_api_errors_total{job="dropship-gateway"}[5m])) by (kind)`,
			"{{kind}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimitHits returns a stat panel showing partner rate-limit rejections
// in the past hour.
func RateLimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Rate Limit Hits (1h)").
		Description("Partner rate-limit rejections in the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(`increase(dsg_partner_rate_limit_hits_total{job="dropship-gateway"}[1h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// AuthActivity returns a timeseries panel showing logins and refreshes.
func AuthActivity() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Session Activity").
		Description("Partner logins and token refreshes per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(
			`increase(dsg_partner_auth_logins_total{job="dropship-gateway"}[1h])`,
			"logins", "A",
		)).
		WithTarget(PromQuery(
			`increase(dsg_partner_auth_refreshes_total{job="dropship-gateway"}[1h])`,
			"refreshes", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
