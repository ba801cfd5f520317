package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dsg-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dsg-recording",
					Rules: []Rule{
						{
							Record: "dsg:http_requests:rate5m",
							Expr:   `sum(rate(dsg_http_requests_total[5m]))`,
						},
						{
							Record: "dsg:http_errors:rate5m",
							Expr:   `sum(rate(dsg_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "dsg:partner_api_calls:rate5m",
							Expr:   `rate(dsg_partner_api_calls_total[5m])`,
						},
						{
							Record: "dsg:partner_api_errors:rate5m",
							Expr:   `sum(rate(dsg_partner_api_errors_total[5m]))`,
						},
						{
							Record: "dsg:orders_submitted:rate5m",
							Expr:   `rate(dsg_orders_submitted_total[5m])`,
						},
						{
							Record: "dsg:lines_skipped:rate5m",
							Expr:   `rate(dsg_order_lines_skipped_total[5m])`,
						},
					},
				},
			},
		},
	}
}
