// Package main generates Grafana dashboards and Prometheus rule files
// for dealradar operational monitoring.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dealradar/dealradar/tools/dashgen/dashboards"
	"github.com/dealradar/dealradar/tools/dashgen/rules"
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	recording := rules.RecordingRules()
	alerts := rules.AlertRules()

	if err := validateRules(recording, alerts); err != nil {
		return fmt.Errorf("validating rules: %w", err)
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		if err := writeDashboard(cfg.OutputDir); err != nil {
			return err
		}
	}
	if cfg.RulesEnabled {
		if err := writeRules(cfg.OutputDir, recording, alerts); err != nil {
			return err
		}
	}
	return nil
}

func writeDashboard(outputDir string) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dashboard: %w", err)
	}

	path := filepath.Join(outputDir, "grafana", "dealradar-overview.json")
	if err := writeFile(path, data); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func writeRules(outputDir string, prs ...rules.PrometheusRule) error {
	for _, pr := range prs {
		data, err := yaml.Marshal(pr)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", pr.Metadata.Name, err)
		}

		path := filepath.Join(outputDir, "prometheus", pr.Metadata.Name+".yaml")
		if err := writeFile(path, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
