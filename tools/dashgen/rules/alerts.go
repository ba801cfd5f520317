package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// dropship gateway operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dsg-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dsg-alerts",
					Rules: []Rule{
						{
							Alert: "DsgDown",
							Expr:  `absent(up{job="dropship-gateway"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Dropship Gateway is down",
								"description": "The dropship-gateway job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "DsgReadinessDown",
							Expr:  `dsg_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Dropship Gateway readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "DsgHighErrorRate",
							Expr:  `dsg:http_errors:rate5m / dsg:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Dropship Gateway",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "DsgPartnerErrors",
							Expr:  `dsg:partner_api_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Partner API failure rate is elevated",
								"description": "Partner API calls are failing at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "DsgRateLimitSaturation",
							Expr:  `increase(dsg_partner_rate_limit_hits_total[15m]) > 5`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Partner rate limit is being hit repeatedly",
								"description": "More than 5 partner rate-limit rejections in 15 minutes. The configured tier may be wrong for the current load.",
							},
						},
						{
							Alert: "DsgQueueBacklog",
							Expr:  `dsg_request_queue_depth > 100`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Partner request lane is backed up",
								"description": "More than 100 tasks have been waiting in the request lane for over 5 minutes.",
							},
						},
						{
							Alert: "DsgOrderRejections",
							Expr:  `increase(dsg_orders_rejected_total[1h]) > 3`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Orders are being rejected with no valid lines",
								"description": "More than 3 orders were rejected in the last hour. Product mappings may be stale or broken.",
							},
						},
						{
							Alert: "DsgVariantDriftSpike",
							Expr:  `increase(dsg_variant_drift_total[1h]) > 10`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Variant identifiers are drifting rapidly",
								"description": "More than 10 stored variant ids were found stale in the last hour. The partner may have republished a catalog segment.",
							},
						},
					},
				},
			},
		},
	}
}
