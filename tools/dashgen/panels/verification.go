package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VerificationOutcomes returns a timeseries panel showing verification
// rates broken down by terminal recommendation.
func VerificationOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Verification Outcomes").
		Description("Verification rate by recommendation (accept, review, reject)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(dealradar_verifications_total{job="dealradar"}[5m])) by (recommendation)`,
			"{{recommendation}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DropReasons returns a timeseries panel showing candidates dropped
// before persistence, by reason.
func DropReasons() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Drop Reasons").
		Description("Candidates dropped before persistence, by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(dealradar_deals_dropped_total{job="dealradar"}[5m])) by (reason)`,
			"{{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DealsPersistedRate returns a timeseries panel showing deals written to
// the catalog per minute.
func DealsPersistedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deals Persisted / min").
		Description("Rate of deals written to the catalog per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(`dealradar:deals_persisted:rate5m * 60`, "deals/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
