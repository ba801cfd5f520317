package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// OrdersRate returns a timeseries panel showing submitted and rejected
// orders per minute.
func OrdersRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Orders / min").
		Description("Orders submitted and rejected per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`dsg:orders_submitted:rate5m * 60`, "submitted/min", "A")).
		WithTarget(PromQuery(
			`rate(dsg_orders_rejected_total[5m]) * 60`,
			"rejected/min", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LinesSkipped returns a timeseries panel showing skipped order lines per
// minute.
func LinesSkipped() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Lines Skipped / min").
		Description("Order lines skipped with validation issues per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`dsg:lines_skipped:rate5m * 60`, "skipped/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.5, 2)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// VariantDrift returns a stat panel showing drifted variant identifiers
// detected in the past 24 hours.
func VariantDrift() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Variant Drift (24h)").
		Description("Stored variant ids found drifted from live in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(dsg_variant_drift_total{job="dropship-gateway"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
