package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/dealradar/dealradar/tools/dashgen/rules"
)

// validateRules parses every rule expression and checks that each
// referenced metric is one dealradar actually exports. This catches
// renamed metrics before a broken dashboard ships.
func validateRules(prs ...rules.PrometheusRule) error {
	var errs []error

	for _, pr := range prs {
		for _, group := range pr.Spec.Groups {
			for _, rule := range group.Rules {
				name := rule.Record
				if name == "" {
					name = rule.Alert
				}
				if err := validateExpr(rule.Expr); err != nil {
					errs = append(errs, fmt.Errorf("%s/%s: %w", group.Name, name, err))
				}
			}
		}
	}

	return errors.Join(errs...)
}

func validateExpr(exprText string) error {
	expr, err := parser.ParseExpr(exprText)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", exprText, err)
	}

	var unknown []string
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok {
			if vs.Name != "" && !KnownMetrics[vs.Name] {
				unknown = append(unknown, vs.Name)
			}
		}
		return nil
	})

	if len(unknown) > 0 {
		return fmt.Errorf("unknown metrics %v in %q", unknown, exprText)
	}
	return nil
}
