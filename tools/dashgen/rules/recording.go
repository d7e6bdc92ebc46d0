package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dealradar-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dealradar-recording",
					Rules: []Rule{
						{
							Record: "dealradar:http_requests:rate5m",
							Expr:   `sum(rate(dealradar_http_requests_total[5m]))`,
						},
						{
							Record: "dealradar:http_errors:rate5m",
							Expr:   `sum(rate(dealradar_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "dealradar:messages:rate5m",
							Expr:   `rate(dealradar_messages_processed_total[5m])`,
						},
						{
							Record: "dealradar:message_failures:rate5m",
							Expr:   `rate(dealradar_message_failures_total[5m])`,
						},
						{
							Record: "dealradar:deals_persisted:rate5m",
							Expr:   `rate(dealradar_deals_persisted_total[5m])`,
						},
						{
							Record: "dealradar:fetch_calls:rate5m",
							Expr:   `rate(dealradar_fetch_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
