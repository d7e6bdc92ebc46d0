package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
)

// ScoreDistribution returns a bar gauge panel showing the distribution of
// computed deal scores across histogram buckets.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Score Distribution").
		Description("Distribution of deal scores (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(dealradar_scoring_distribution_bucket{job="dealradar"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
