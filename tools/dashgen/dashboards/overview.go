// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/jhartmann/carwatch/tools/dashgen/panels"
)

// BuildOverview constructs the Carwatch Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Carwatch Overview").
		Uid("carwatch-overview").
		Tags([]string{"carwatch"}).
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
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.NextScoringRun()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoringOutcomes()).
		WithPanel(panels.RunDuration()).
		WithPanel(panels.CohortLevels()).
		WithPanel(panels.ScoreDistribution()))

	// Row 4: Listing Lifecycle.
	b.WithRow(dashboard.NewRowBuilder("Listing Lifecycle").
		WithPanel(panels.UpsertRate()).
		WithPanel(panels.DeactivationsRate()).
		WithPanel(panels.NextDeactivateRun()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
