// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/repair-cost/tools/dashgen/rules"
)

// histogramSuffixes are stripped before a series name is looked up.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation errors and warnings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a PromQL expression and checks its metric names against known.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parse %q: %v", expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if vs.Name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("selector without metric name in %q", expr))
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})

	return res
}

// Dashboard validates every query expression in a built dashboard.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	exprs, err := dashboardExprs(dash)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	if len(exprs) == 0 {
		res.Warnings = append(res.Warnings, "dashboard has no queries")
	}

	for _, e := range exprs {
		res.merge(Expr(e, known))
	}
	return res
}

// Rules validates every expression in a PrometheusRule and checks that
// alerts carry severity and summary.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			res.merge(Expr(r.Expr, known))
			if r.Alert == "" {
				continue
			}
			if r.Labels["severity"] == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("alert %s has no severity", r.Alert))
			}
			if r.Annotations["summary"] == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("alert %s has no summary", r.Alert))
			}
		}
	}
	return res
}

// dashboardExprs walks the dashboard JSON and returns every "expr" value.
// Going through JSON keeps this independent of the SDK's panel variants.
func dashboardExprs(dash dashboard.Dashboard) ([]string, error) {
	data, err := json.Marshal(dash)
	if err != nil {
		return nil, fmt.Errorf("marshaling dashboard: %w", err)
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding dashboard: %w", err)
	}

	var exprs []string
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case map[string]any:
			for k, child := range t {
				if s, ok := child.(string); ok && k == "expr" {
					exprs = append(exprs, s)
					continue
				}
				walk(child)
			}
		case []any:
			for _, child := range t {
				walk(child)
			}
		}
	}
	walk(tree)

	return exprs, nil
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
