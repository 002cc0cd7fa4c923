// Package validate checks generated dashboards for broken PromQL and
// references to metrics the service does not export.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	promql "github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors are malformed expressions;
// Warnings are references to metric names outside the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed without errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus query expression in the dashboard
// against PromQL syntax and the known metric set.
func Dashboard(dash dashboard.Dashboard, knownMetrics map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			validatePanel(p.Panel, knownMetrics, &res)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				validatePanel(&p.RowPanel.Panels[i], knownMetrics, &res)
			}
		}
	}
	return res
}

func validatePanel(p *dashboard.Panel, knownMetrics map[string]bool, res *Result) {
	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}
	for _, target := range p.Targets {
		expr := targetExpr(target)
		if expr == "" {
			continue
		}
		Expr(title, expr, knownMetrics, res)
	}
}

// Expr validates one PromQL expression, recording findings under the given
// panel or rule name.
func Expr(name, expr string, knownMetrics map[string]bool, res *Result) {
	// Grafana template variables are not valid PromQL; substitute a
	// plausible literal before parsing.
	sanitized := strings.NewReplacer(
		"$__rate_interval", "5m",
		"$__interval", "1m",
	).Replace(expr)

	parsed, err := parser.ParseExpr(sanitized)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", name, expr, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetrics[baseName(vs.Name)] {
			res.warnf("%s: unknown metric %q", name, vs.Name)
		}
		return nil
	})
}

// baseName maps histogram series back to the metric they belong to.
func baseName(metric string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if trimmed, ok := strings.CutSuffix(metric, suffix); ok {
			return trimmed
		}
	}
	return metric
}

func targetExpr(target any) string {
	switch q := target.(type) {
	case promql.Dataquery:
		return q.Expr
	case *promql.Dataquery:
		return q.Expr
	default:
		return ""
	}
}
