// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/dealradar/dealradar/tools/dashgen/panels"
)

// BuildOverview constructs the Dealradar Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Dealradar Overview").
		Uid("dealradar-overview").
		Tags([]string{"dealradar"}).
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
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Page fetches.
	b.WithRow(dashboard.NewRowBuilder("Page Fetches").
		WithPanel(panels.FetchCallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Pipeline.
	b.WithRow(dashboard.NewRowBuilder("Pipeline").
		WithPanel(panels.MessagesRate()).
		WithPanel(panels.MessageFailures()).
		WithPanel(panels.SweepDuration()).
		WithPanel(panels.DuplicatesSkipped()))

	// Row 5: Verification.
	b.WithRow(dashboard.NewRowBuilder("Verification").
		WithPanel(panels.VerificationOutcomes()).
		WithPanel(panels.DropReasons()).
		WithPanel(panels.DealsPersistedRate()))

	// Row 6: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoreDistribution()))

	// Row 7: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
