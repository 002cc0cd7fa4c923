package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UpsertRate returns a timeseries panel showing listing upserts per minute,
// split by result.
func UpsertRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upserts / min").
		Description("Rate of listing upserts per minute, by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`carwatch:upsert_listings:rate5m * 60`, "{{result}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DeactivationsRate returns a timeseries panel showing listings marked
// inactive per hour.
func DeactivationsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deactivations / h").
		Description("Listings marked inactive per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`increase(carwatch_deactivated_listings_total{job="carwatch"}[1h])`,
			"deactivated", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NextDeactivateRun returns a stat panel showing time until the next
// scheduled deactivation run.
func NextDeactivateRun() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Deactivation Run").
		Description("Time until the next scheduled deactivation run").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`carwatch_scheduler_next_deactivate_timestamp{job="carwatch"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
