package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// dealradar operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dealradar-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dealradar-alerts",
					Rules: []Rule{
						{
							Alert: "DealradarDown",
							Expr:  `absent(up{job="dealradar"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Dealradar is down",
								"description": "The dealradar job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "DealradarReadinessDown",
							Expr:  `dealradar_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Dealradar readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "DealradarHighErrorRate",
							Expr:  `dealradar:http_errors:rate5m / dealradar:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on dealradar",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "DealradarMessageFailures",
							Expr:  `dealradar:message_failures:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Message processing failure rate is elevated",
								"description": "Message failures are occurring at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "DealradarFetchQuotaHigh",
							Expr:  `dealradar_fetch_daily_usage > 1600`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Page fetch daily usage is above 80% of the quota",
								"description": "Daily page fetch usage has exceeded 1600 calls (limit is 2000).",
							},
						},
						{
							Alert: "DealradarFetchLimitReached",
							Expr:  `increase(dealradar_fetch_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Page fetch daily limit has been reached",
								"description": "The daily page fetch quota has been exhausted. Verification degrades to promotional data until reset.",
							},
						},
						{
							Alert: "DealradarNotificationFailures",
							Expr:  `increase(dealradar_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more deal notifications (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
