// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/dropship-gateway/tools/dashgen/panels"
)

// BuildOverview constructs the Dropship Gateway Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Dropship Gateway Overview").
		Uid("dsg-overview").
		Tags([]string{"dsg", "dropship-gateway"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QueueDepthStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Partner API.
	b.WithRow(dashboard.NewRowBuilder("Partner API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.ErrorsByKind()).
		WithPanel(panels.RateLimitHits()).
		WithPanel(panels.AuthActivity()))

	// Row 4: Request Lane.
	b.WithRow(dashboard.NewRowBuilder("Request Lane").
		WithPanel(panels.QueueWait()).
		WithPanel(panels.CacheHitRatio()))

	// Row 5: Orders.
	b.WithRow(dashboard.NewRowBuilder("Orders").
		WithPanel(panels.OrdersRate()).
		WithPanel(panels.LinesSkipped()).
		WithPanel(panels.VariantDrift()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
