package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// RequireTitleRule checks that the file opens with a level-1 heading.
type RequireTitleRule struct {
	lint.BaseRule
}

// NewRequireTitleRule creates a new require-title rule.
func NewRequireTitleRule() *RequireTitleRule {
	return &RequireTitleRule{
		BaseRule: lint.NewBaseRule(
			"CL001",
			"require-title",
			"Context files should start with a level-1 heading",
			false,
		),
	}
}

// Apply checks the first non-blank line for a "# " title.
func (r *RequireTitleRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		line, _ := ctx.Doc.Line(n)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return nil, nil
		}
		return []lint.Violation{mustViolation(r.ID(),
			"File should start with a level-1 heading",
			document.Location{Line: n, Column: 0},
		)}, nil
	}

	// Blank file: nothing to title.
	return nil, nil
}

// HeadingSpaceRule checks for a space between heading markers and text.
type HeadingSpaceRule struct {
	lint.BaseRule
}

// NewHeadingSpaceRule creates a new heading-space rule.
func NewHeadingSpaceRule() *HeadingSpaceRule {
	return &HeadingSpaceRule{
		BaseRule: lint.NewBaseRule(
			"CL002",
			"heading-space",
			"Heading markers should be followed by a space",
			true,
		),
	}
}

// Apply flags headings written as "#Header" instead of "# Header".
func (r *HeadingSpaceRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	fenced := fencedLines(ctx.Doc)
	var violations []lint.Violation

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if ctx.Cancelled() {
			return violations, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if fenced[n] {
			continue
		}

		line, _ := ctx.Doc.Line(n)
		hashes := headingMarkerLen(line)
		if hashes == 0 {
			continue
		}

		violations = append(violations, mustViolation(r.ID(),
			"Missing space after heading marker",
			document.Location{Line: n, Column: hashes + 1},
		))
	}

	return violations, nil
}

// GenerateFixes inserts the missing space after each flagged marker.
func (r *HeadingSpaceRule) GenerateFixes(violations []lint.Violation, content string) []fix.Fix {
	doc := document.New("", content)
	var fixes []fix.Fix

	for _, v := range violations {
		line, ok := doc.Line(v.Location.Line)
		if !ok || headingMarkerLen(line) == 0 {
			continue
		}

		at := document.Location{Line: v.Location.Line, Column: v.Location.Column}
		span, err := document.NewSpan(at, at)
		if err != nil {
			continue
		}
		fixes = append(fixes, fix.Fix{
			Span:        span,
			Text:        " ",
			Description: "Insert space after heading marker",
		})
	}

	return fixes
}

// headingMarkerLen returns the number of leading # characters when the
// line is a heading missing its space, and 0 otherwise.
func headingMarkerLen(line string) int {
	if !strings.HasPrefix(line, "#") {
		return 0
	}
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i > 6 || i == len(line) || line[i] == ' ' || line[i] == '\t' {
		return 0
	}
	return i
}
