package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// defaultMaxLineLength is the line length limit when no option is set.
const defaultMaxLineLength = 120

// LineLengthRule checks that lines stay under a maximum length.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates a new line length rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(
			"CL006",
			"line-length",
			"Lines should not exceed the configured maximum length",
			false,
		),
	}
}

// Apply measures lines in runes so multi-byte text is not penalized.
// Fenced code blocks are exempt; long command lines and URLs inside
// them cannot usefully be wrapped.
func (r *LineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	max := ctx.OptionInt("max", defaultMaxLineLength)
	if max <= 0 {
		max = defaultMaxLineLength
	}

	fenced := fencedLines(ctx.Doc)
	var violations []lint.Violation

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if fenced[n] {
			continue
		}
		line, _ := ctx.Doc.Line(n)
		length := utf8.RuneCountInString(line)
		if length <= max {
			continue
		}

		violations = append(violations, mustViolation(r.ID(),
			fmt.Sprintf("Line length %d exceeds maximum %d", length, max),
			document.Location{Line: n, Column: max + 1},
		))
	}

	return violations, nil
}
