package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// QueueWait returns a timeseries panel showing the p95 time tasks spend
// queued before dispatch.
func QueueWait() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Queue Wait (p95)").
		Description("95th percentile time tasks spend in the request lane").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(dsg_request_queue_wait_seconds_bucket{job="dropship-gateway"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CacheHitRatio returns a timeseries panel showing the product search cache
// hit ratio as a percentage.
func CacheHitRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Cache Hit %").
		Description("Product search cache hits as percentage of lookups").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`rate(dsg_search_cache_hits_total[5m]) / (rate(dsg_search_cache_hits_total[5m]) + rate(dsg_search_cache_misses_total[5m])) * 100`,
			"hit %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
