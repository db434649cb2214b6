package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "repair-cost-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "repair-cost-recording",
					Rules: []Rule{
						{
							Record: "repair_cost:http_requests:rate5m",
							Expr:   `sum(rate(repair_cost_http_requests_total[5m]))`,
						},
						{
							Record: "repair_cost:http_errors:rate5m",
							Expr:   `sum(rate(repair_cost_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "repair_cost:estimates:rate5m",
							Expr:   `sum(rate(repair_cost_estimates_total[5m]))`,
						},
						{
							Record: "repair_cost:estimate_failures:rate5m",
							Expr:   `sum(rate(repair_cost_estimate_failures_total[5m]))`,
						},
						{
							Record: "repair_cost:recost_failed_rows:rate5m",
							Expr:   `sum(rate(repair_cost_recost_rows_total{outcome="failed"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
