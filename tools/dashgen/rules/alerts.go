package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// repair-cost operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "repair-cost-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "repair-cost-alerts",
					Rules: []Rule{
						{
							Alert: "RepairCostDown",
							Expr:  `absent(up{job="repair-cost"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "repair-cost is down",
								"description": "The repair-cost job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "RepairCostReadinessDown",
							Expr:  `repair_cost_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "repair-cost readiness check is failing",
								"description": "The readiness probe cannot reach PostgreSQL and has reported not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "RepairCostHighErrorRate",
							Expr:  `repair_cost:http_errors:rate5m / repair_cost:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on repair-cost",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "RepairCostPriceTableEmpty",
							Expr:  `repair_cost_price_table_entries == 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "repair-cost has an empty price table",
								"description": "Every estimate will fail until a non-empty price table is loaded.",
							},
						},
						{
							Alert: "RepairCostEstimateFailures",
							Expr:  `repair_cost:estimate_failures:rate5m / repair_cost:estimates:rate5m > 0.1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Many rows cannot be costed",
								"description": "More than 10% of rows are failing, usually because codes are missing from the price table.",
							},
						},
						{
							Alert: "RepairCostRecostFailures",
							Expr:  `increase(repair_cost_recost_rows_total{outcome="failed"}[1h]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Batch recost left inspections uncosted",
								"description": "Scheduled recost recorded failures in the last hour; list them with rcc inspections list --failed.",
							},
						},
					},
				},
			},
		},
	}
}
