package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/document"
)

// Result contains the outcome of linting a single document.
type Result struct {
	// Doc is the document that was linted.
	Doc *document.Document

	// Violations contains all issues found, in document order.
	Violations []Violation

	// RuleErrors contains any internal errors from rule execution,
	// keyed by rule ID. A failing rule never aborts the others.
	RuleErrors map[string]error
}

// HasViolations returns true if any violations were found.
func (r *Result) HasViolations() bool {
	return len(r.Violations) > 0
}

// Count returns the number of violations at the given severity.
func (r *Result) Count(severity Severity) int {
	count := 0
	for _, v := range r.Violations {
		if v.Severity == severity {
			count++
		}
	}
	return count
}

// Engine evaluates a registry of rules against documents.
type Engine struct {
	// Registry holds the rules for this invocation.
	Registry *Registry
}

// NewEngine creates an Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintDocument runs every enabled rule against the document.
// Per-rule failures are isolated in Result.RuleErrors; only a cancelled
// context returns an error.
func (e *Engine) LintDocument(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
) (*Result, error) {
	logger := logging.FromContext(ctx)
	resolved := ResolveRules(e.Registry, cfg)

	result := &Result{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc, cfg, rr.Config)

		violations, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			logger.Warn("rule failed",
				logging.FieldRule, rr.Rule.ID(),
				logging.FieldError, err,
			)
			continue
		}

		// Apply the resolved severity.
		for i := range violations {
			violations[i].Severity = rr.Severity
		}

		result.Violations = append(result.Violations, violations...)
	}

	// Report in document order regardless of rule execution order.
	sort.SliceStable(result.Violations, func(i, j int) bool {
		return result.Violations[i].Location.Before(result.Violations[j].Location)
	})

	return result, nil
}
