package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// TrailingWhitespaceRule checks for trailing whitespace on lines.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"CL003",
			"no-trailing-spaces",
			"Lines should not have trailing whitespace",
			true,
		),
	}
}

// Apply checks each line for a trailing whitespace run.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var violations []lint.Violation

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if ctx.Cancelled() {
			return violations, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		line, _ := ctx.Doc.Line(n)
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line || trimmed == "" {
			continue
		}

		violations = append(violations, mustViolation(r.ID(),
			"Trailing whitespace",
			document.Location{Line: n, Column: len(trimmed) + 1},
		))
	}

	return violations, nil
}

// GenerateFixes deletes each flagged trailing run.
func (r *TrailingWhitespaceRule) GenerateFixes(violations []lint.Violation, content string) []fix.Fix {
	doc := document.New("", content)
	var fixes []fix.Fix

	for _, v := range violations {
		line, ok := doc.Line(v.Location.Line)
		if !ok {
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}

		span, err := document.NewSpan(
			document.Location{Line: v.Location.Line, Column: len(trimmed) + 1},
			document.Location{Line: v.Location.Line, Column: len(line) + 1},
		)
		if err != nil {
			continue
		}
		fixes = append(fixes, fix.Fix{
			Span:        span,
			Text:        "",
			Description: "Remove trailing whitespace",
		})
	}

	return fixes
}

// FinalNewlineRule ensures files end with exactly one newline.
type FinalNewlineRule struct {
	lint.BaseRule
}

// NewFinalNewlineRule creates a new final newline rule.
func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{
		BaseRule: lint.NewBaseRule(
			"CL004",
			"final-newline",
			"Files should end with a single newline character",
			true,
		),
	}
}

// Apply checks the end of the file.
func (r *FinalNewlineRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil || ctx.Doc.Content == "" {
		return nil, nil
	}

	content := ctx.Doc.Content
	last := ctx.Doc.LineCount()

	if !strings.HasSuffix(content, "\n") {
		lastLine, _ := ctx.Doc.Line(last)
		return []lint.Violation{mustViolation(r.ID(),
			"File should end with a newline",
			document.Location{Line: last, Column: len(lastLine) + 1},
		)}, nil
	}

	if strings.HasSuffix(content, "\n\n") {
		return []lint.Violation{mustViolation(r.ID(),
			"File should end with a single newline",
			document.Location{Line: last, Column: 0},
		)}, nil
	}

	return nil, nil
}

// GenerateFixes appends the missing newline or trims the extra ones.
func (r *FinalNewlineRule) GenerateFixes(violations []lint.Violation, content string) []fix.Fix {
	if len(violations) == 0 || content == "" {
		return nil
	}

	doc := document.New("", content)
	last := doc.LineCount()

	if !strings.HasSuffix(content, "\n") {
		lastLine, _ := doc.Line(last)
		at := document.Location{Line: last, Column: len(lastLine) + 1}
		span, err := document.NewSpan(at, at)
		if err != nil {
			return nil
		}
		return []fix.Fix{{
			Span:        span,
			Text:        "\n",
			Description: "Add final newline",
		}}
	}

	// Collapse the run of trailing blank lines down to the single empty
	// line that represents the final newline.
	firstBlank := last
	for firstBlank > 1 {
		line, _ := doc.Line(firstBlank - 1)
		if line != "" {
			break
		}
		firstBlank--
	}
	if firstBlank == 1 {
		// Entirely blank file keeps its final newline.
		firstBlank = 2
	}
	if firstBlank >= last {
		return nil
	}

	span, err := document.NewSpan(
		document.Location{Line: firstBlank, Column: 1},
		document.Location{Line: last, Column: 1},
	)
	if err != nil {
		return nil
	}
	return []fix.Fix{{
		Span:        span,
		Text:        "",
		Description: "Remove extra trailing newlines",
	}}
}

// HardTabsRule checks for tab characters.
type HardTabsRule struct {
	lint.BaseRule
}

// tabReplacement is what each tab becomes when fixed.
const tabReplacement = "    "

// NewHardTabsRule creates a new hard tabs rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule(
			"CL005",
			"no-hard-tabs",
			"Use spaces instead of hard tabs",
			true,
		),
	}
}

// Apply flags the first tab on each line outside fenced blocks.
func (r *HardTabsRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	fenced := fencedLines(ctx.Doc)
	var violations []lint.Violation

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if fenced[n] {
			continue
		}
		line, _ := ctx.Doc.Line(n)
		idx := strings.IndexByte(line, '\t')
		if idx < 0 {
			continue
		}

		violations = append(violations, mustViolation(r.ID(),
			"Hard tab",
			document.Location{Line: n, Column: idx + 1},
		))
	}

	return violations, nil
}

// GenerateFixes replaces every tab on each flagged line, one fix per
// tab so the spans stay disjoint.
func (r *HardTabsRule) GenerateFixes(violations []lint.Violation, content string) []fix.Fix {
	doc := document.New("", content)
	var fixes []fix.Fix

	for _, v := range violations {
		line, ok := doc.Line(v.Location.Line)
		if !ok {
			continue
		}
		for idx := 0; idx < len(line); idx++ {
			if line[idx] != '\t' {
				continue
			}
			span, err := document.NewSpan(
				document.Location{Line: v.Location.Line, Column: idx + 1},
				document.Location{Line: v.Location.Line, Column: idx + 2},
			)
			if err != nil {
				continue
			}
			fixes = append(fixes, fix.Fix{
				Span:        span,
				Text:        tabReplacement,
				Description: "Replace hard tab with spaces",
			})
		}
	}

	return fixes
}
