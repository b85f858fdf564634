package rules

import (
	"fmt"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// defaultMaxFileLines is the file size limit in lines when no option
// is set. Context files past this point tend to get truncated or
// ignored by the agents consuming them.
const defaultMaxFileLines = 500

// FileSizeRule checks overall file size in lines and bytes.
type FileSizeRule struct {
	lint.BaseRule
}

// NewFileSizeRule creates a new file size rule.
func NewFileSizeRule() *FileSizeRule {
	return &FileSizeRule{
		BaseRule: lint.NewBaseRule(
			"CL007",
			"file-size",
			"Files should stay under the configured size limits",
			false,
		),
	}
}

// DefaultSeverity reports oversized files as warnings.
func (r *FileSizeRule) DefaultSeverity() lint.Severity {
	return lint.SeverityWarning
}

// Apply checks line and byte limits. A byte limit of zero disables the
// byte check.
func (r *FileSizeRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	maxLines := ctx.OptionInt("max_lines", defaultMaxFileLines)
	maxBytes := ctx.OptionInt("max_bytes", 0)

	var violations []lint.Violation

	if maxLines > 0 && ctx.Doc.LineCount() > maxLines {
		violations = append(violations, mustViolation(r.ID(),
			fmt.Sprintf("File has %d lines, exceeding maximum %d", ctx.Doc.LineCount(), maxLines),
			document.Location{Line: 1, Column: 0},
		))
	}

	if maxBytes > 0 && len(ctx.Doc.Content) > maxBytes {
		violations = append(violations, mustViolation(r.ID(),
			fmt.Sprintf("File is %d bytes, exceeding maximum %d", len(ctx.Doc.Content), maxBytes),
			document.Location{Line: 1, Column: 0},
		))
	}

	return violations, nil
}
