// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/repair-cost/tools/dashgen/panels"
)

// BuildOverview constructs the repair-cost overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Repair Cost Overview").
		Uid("repair-cost-overview").
		Tags([]string{"repair-cost"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.PriceEntriesStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Estimates").
		WithPanel(panels.EstimatesByResult()).
		WithPanel(panels.EstimateFailures()).
		WithPanel(panels.CappedFamilies()).
		WithPanel(panels.UnknownCodes()))

	b.WithRow(dashboard.NewRowBuilder("Recost").
		WithPanel(panels.RecostRows()).
		WithPanel(panels.RecostDuration()).
		WithPanel(panels.RecostFailedRows()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
