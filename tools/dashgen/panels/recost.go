package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RecostRows returns a timeseries panel showing inspections processed by
// batch recost per minute, split by outcome.
func RecostRows() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recost Rows / min").
		Description("Inspections processed by batch recost by outcome: costed, skipped, failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`sum(rate(repair_cost_recost_rows_total{`+Job+`}[5m])) by (outcome) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RecostDuration returns a timeseries panel showing the p95 recost run
// duration.
func RecostDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recost Duration (p95)").
		Description("95th percentile batch recost run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(repair_cost_recost_duration_seconds_bucket{`+Job+`}[1h])) by (le))`,
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

// RecostFailedRows returns a stat panel showing inspections a recost could
// not price in the last 24 hours.
func RecostFailedRows() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Recost Failures (24h)").
		Description("Inspections left without a total by batch recost").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`sum(increase(repair_cost_recost_rows_total{`+Job+`, outcome="failed"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
