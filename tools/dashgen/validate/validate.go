// Package validate checks generated dashboards for references to metrics
// the gateway does not export. Catching a renamed or misspelled metric at
// generation time beats discovering an empty panel in Grafana.
package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings for one dashboard.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

var exprRe = regexp.MustCompile(`"expr"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// histogramSuffixes are the synthetic series Prometheus generates for
// histogram metrics. Queries reference them, KnownMetrics lists the base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Dashboard checks every panel query in the dashboard against the set of
// known metric names. Unparseable queries and references to unknown metrics
// are errors; a dashboard with no queries at all is a warning.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	raw, err := json.Marshal(dash)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return result
	}

	matches := exprRe.FindAllStringSubmatch(string(raw), -1)
	if len(matches) == 0 {
		result.Warnings = append(result.Warnings, "dashboard contains no queries")
		return result
	}

	for _, m := range matches {
		expr, err := unquoteExpr(m[1])
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("decoding query %q: %v", m[1], err))
			continue
		}

		names, err := metricNames(expr)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("parsing query %q: %v", expr, err))
			continue
		}
		for _, name := range names {
			if !knownMetric(name, known) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("query %q references unknown metric %q", expr, name))
			}
		}
	}

	return result
}

// metricNames parses a PromQL expression and returns every metric name it
// selects from.
func metricNames(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names, nil
}

func knownMetric(name string, known map[string]bool) bool {
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

// unquoteExpr reverses the JSON string escaping applied when the dashboard
// was marshaled.
func unquoteExpr(s string) (string, error) {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return "", err
	}
	return out, nil
}
