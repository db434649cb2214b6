package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EstimatesByResult returns a stacked timeseries of costed rows per minute
// split by result kind.
func EstimatesByResult() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rows Costed / min").
		Description("Rows costed per minute by result: numeric, needs_replacement, not_available").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(repair_cost_estimates_total{`+Job+`}[5m])) by (result) * 60`,
			"{{result}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EstimateFailures returns a timeseries panel showing rows per minute that
// could not be costed, mostly codes with no price entry.
func EstimateFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Failures / min").
		Description("Rows aborted because a grouped code has no price").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`repair_cost:estimate_failures:rate5m * 60`, "failures/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CappedFamilies returns a stat panel showing how many family costs were
// clamped to their max cost in the last 24 hours.
func CappedFamilies() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Capped Families (24h)").
		Description("Family costs clamped to the max cost of their first code").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(increase(repair_cost_families_capped_total{`+Job+`}[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// UnknownCodes returns a stat panel showing input codes dropped for having
// no family in the last 24 hours.
func UnknownCodes() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Unknown Codes (24h)").
		Description("Input codes that belong to no part family and were ignored").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(increase(repair_cost_unknown_codes_total{`+Job+`}[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
