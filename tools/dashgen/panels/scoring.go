package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ScoringOutcomes returns a timeseries panel showing per-outcome listing
// processing rates during scoring runs.
func ScoringOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Scoring Outcomes").
		Description("Listings processed per second, by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`carwatch:scoring_listings:rate5m`, "{{outcome}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RunDuration returns a timeseries panel showing the p95 scoring run duration.
func RunDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Run Duration (p95)").
		Description("95th percentile scoring run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(carwatch_scoring_run_duration_seconds_bucket{job="carwatch"}[5m])) by (le))`,
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

// CohortLevels returns a timeseries panel showing which cohort fallback
// levels scored listings, as an hourly share.
func CohortLevels() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cohort Levels").
		Description("Scores per hour by cohort fallback level used").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(carwatch_scoring_cohort_level_total{job="carwatch"}[1h])) by (level)`,
			"{{level}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

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
			`sum(increase(carwatch_scoring_distribution_bucket{job="carwatch"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
