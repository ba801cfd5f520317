// Command dashgen generates the Grafana dashboard and Prometheus rule files
// under deploy/. Dashboards are built with the Grafana Foundation SDK so
// panel definitions live in reviewable Go instead of hand-edited JSON.
//
// Run from tools/dashgen/:
//
//	go run . -output ../../deploy
//	go run . -validate
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/dropship-gateway/tools/dashgen/dashboards"
	"github.com/donaldgifford/dropship-gateway/tools/dashgen/rules"
	"github.com/donaldgifford/dropship-gateway/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	cfg := DefaultConfig()
	validateOnly := flag.Bool("validate", false, "validate dashboards without writing files")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "directory to write generated artifacts into")
	flag.BoolVar(&cfg.DashboardEnabled, "dashboard", cfg.DashboardEnabled, "generate the Grafana dashboard")
	flag.BoolVar(&cfg.RulesEnabled, "rules", cfg.RulesEnabled, "generate Prometheus rule files")
	flag.Parse()

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "dashgen: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "dashgen: warning: %s\n", w)
	}
	if !result.Ok() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "dashgen: error: %s\n", e)
		}
		return fmt.Errorf("dashboard validation failed with %d error(s)", len(result.Errors))
	}

	if validateOnly {
		fmt.Println("dashboard validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		if err := writeDashboard(cfg.OutputDir, dash); err != nil {
			return err
		}
	}
	if cfg.RulesEnabled {
		if err := writeRules(cfg.OutputDir); err != nil {
			return err
		}
	}
	return nil
}

func writeDashboard(outputDir string, dash any) error {
	raw, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}

	path := filepath.Join(outputDir, "grafana", "data", "dsg-overview.json")
	if err := writeFile(path, append(raw, '\n')); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func writeRules(outputDir string) error {
	files := []struct {
		name string
		rule rules.PrometheusRule
	}{
		{"dsg-recording-rules.yaml", rules.RecordingRules()},
		{"dsg-alerts.yaml", rules.AlertRules()},
	}

	for _, f := range files {
		raw, err := yaml.Marshal(f.rule)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", f.name, err)
		}

		path := filepath.Join(outputDir, "prometheus", f.name)
		if err := writeFile(path, append([]byte(generatedHeader), raw...)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
