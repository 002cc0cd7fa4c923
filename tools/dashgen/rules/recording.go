package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "carwatch-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "carwatch-recording",
					Rules: []Rule{
						{
							Record: "carwatch:http_requests:rate5m",
							Expr:   `sum(rate(carwatch_http_requests_total[5m]))`,
						},
						{
							Record: "carwatch:http_errors:rate5m",
							Expr:   `sum(rate(carwatch_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "carwatch:scoring_listings:rate5m",
							Expr:   `sum(rate(carwatch_scoring_listings_total[5m])) by (outcome)`,
						},
						{
							Record: "carwatch:upsert_listings:rate5m",
							Expr:   `sum(rate(carwatch_upsert_listings_total[5m])) by (result)`,
						},
					},
				},
			},
		},
	}
}
