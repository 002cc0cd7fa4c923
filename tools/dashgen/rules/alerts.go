package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// carwatch operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "carwatch-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "carwatch-alerts",
					Rules: []Rule{
						{
							Alert: "CarwatchDown",
							Expr:  `absent(up{job="carwatch"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Carwatch is down",
								"description": "The carwatch job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CarwatchReadinessDown",
							Expr:  `carwatch_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Carwatch readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes, usually meaning the database is unreachable.",
							},
						},
						{
							Alert: "CarwatchHighErrorRate",
							Expr:  `carwatch:http_errors:rate5m / carwatch:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on carwatch",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CarwatchScoringFailures",
							Expr:  `carwatch:scoring_listings:rate5m{outcome="failed"} > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Scoring failures detected",
								"description": "Scoring runs have been failing to persist listing scores for more than 5 minutes.",
							},
						},
						{
							Alert: "CarwatchScoringStalled",
							Expr:  `carwatch_scheduler_next_scoring_timestamp - time() < -300`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Scheduled scoring run is overdue",
								"description": "The next scoring run is more than 5 minutes overdue. The scheduler may be stuck or the lock was never released.",
							},
						},
						{
							Alert: "CarwatchInsufficientDataSpike",
							Expr:  `sum(increase(carwatch_scoring_listings_total{outcome="insufficient"}[1h])) / sum(increase(carwatch_scoring_listings_total[1h])) > 0.5`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Most listings cannot be scored",
								"description": "Over half of the listings processed in the last hour landed in insufficient market data. The active population may be too thin.",
							},
						},
					},
				},
			},
		},
	}
}
