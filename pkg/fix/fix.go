// Package fix provides the fix data model and the application engine:
// batch application of non-conflicting fixes, and an interactive driver
// that steps through fixes one decision at a time.
package fix

import (
	"sort"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// Fix is a proposed text replacement over a span of a document.
type Fix struct {
	// Span is the region to replace. Columns are 1-based character
	// positions; a span may be empty (Start == End) for pure insertions.
	Span document.Span

	// Text is the replacement text.
	Text string

	// Description is a short human-readable summary shown in previews.
	Description string
}

// Generator produces fixes for the violations of a single rule.
// Implementations receive only violations carrying their own rule ID.
type Generator interface {
	GenerateFixes(violations []lint.Violation, content string) []Fix
}

// Generate runs each generator against the violations that match its
// rule ID and returns all proposed fixes. Violations without a
// registered generator produce no fixes.
func Generate(generators map[string]Generator, violations []lint.Violation, content string) []Fix {
	if len(generators) == 0 || len(violations) == 0 {
		return nil
	}

	byRule := make(map[string][]lint.Violation)
	var order []string
	for _, v := range violations {
		if _, seen := byRule[v.RuleID]; !seen {
			order = append(order, v.RuleID)
		}
		byRule[v.RuleID] = append(byRule[v.RuleID], v)
	}
	sort.Strings(order)

	var fixes []Fix
	for _, ruleID := range order {
		gen, ok := generators[ruleID]
		if !ok {
			continue
		}
		fixes = append(fixes, gen.GenerateFixes(byRule[ruleID], content)...)
	}
	return fixes
}

// SortAscending orders fixes top-to-bottom by span start, the order a
// human reads them in.
func SortAscending(fixes []Fix) {
	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[i].Span.Start.Before(fixes[j].Span.Start)
	})
}

// SortDescending orders fixes bottom-to-top by span start, the order
// the batch engine applies them in.
func SortDescending(fixes []Fix) {
	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[j].Span.Start.Before(fixes[i].Span.Start)
	})
}
