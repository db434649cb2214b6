package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/repair-cost/tools/dashgen/rules"
)

var known = map[string]bool{
	"repair_cost_http_request_duration_seconds": true,
	"repair_cost_estimates_total":               true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expr       string
		wantErrors int
		wantWarns  int
	}{
		{
			name: "known counter",
			expr: `sum(rate(repair_cost_estimates_total[5m])) by (result)`,
		},
		{
			name: "histogram bucket resolves to base name",
			expr: `histogram_quantile(0.95, sum(rate(repair_cost_http_request_duration_seconds_bucket[5m])) by (le))`,
		},
		{
			name:       "unknown metric",
			expr:       `rate(repair_cost_listings_total[5m])`,
			wantErrors: 1,
		},
		{
			name:       "parse error",
			expr:       `sum(rate(repair_cost_estimates_total[5m]`,
			wantErrors: 1,
		},
		{
			name:      "selector without name",
			expr:      `{job="repair-cost"}`,
			wantWarns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Expr(tt.expr, known)
			assert.Len(t, res.Errors, tt.wantErrors, "errors: %v", res.Errors)
			assert.Len(t, res.Warnings, tt.wantWarns, "warnings: %v", res.Warnings)
			assert.Equal(t, tt.wantErrors == 0, res.Ok())
		})
	}
}

func TestRules_AlertNeedsSeverityAndSummary(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "g",
				Rules: []rules.Rule{
					{Alert: "Bare", Expr: `repair_cost_estimates_total > 0`},
					{Record: "r", Expr: `sum(repair_cost_estimates_total)`},
				},
			}},
		},
	}

	res := Rules(cr, known)
	assert.Len(t, res.Errors, 2)
	assert.False(t, res.Ok())
}
