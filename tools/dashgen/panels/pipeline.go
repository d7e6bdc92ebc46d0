package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MessagesRate returns a timeseries panel showing processed messages per minute.
func MessagesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Messages / min").
		Description("Rate of promotional messages processed per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`dealradar:messages:rate5m * 60`, "messages/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MessageFailures returns a timeseries panel showing message failures per minute.
func MessageFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Failures / min").
		Description("Rate of message processing failures per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`dealradar:message_failures:rate5m * 60`, "failures/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SweepDuration returns a timeseries panel showing the p95 source sweep
// duration.
func SweepDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sweep Duration (p95)").
		Description("95th percentile source sweep duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(dealradar_sweep_duration_seconds_bucket{job="dealradar"}[5m])) by (le))`,
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

// DuplicatesSkipped returns a timeseries panel showing duplicate candidates
// dropped per minute.
func DuplicatesSkipped() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Duplicates / min").
		Description("Rate of candidates dropped as duplicates per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(dealradar_duplicates_skipped_total{job="dealradar"}[5m])) * 60`,
			"duplicates/min", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
