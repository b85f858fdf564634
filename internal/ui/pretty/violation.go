package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ctxlint/pkg/lint"
)

// FormatViolation formats a single violation for terminal output.
// sourceLine may be empty to suppress the source context block.
func (s *Styles) FormatViolation(v lint.Violation, path, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		v.Location.Line,
		v.Location.Column,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(v.Severity),
		s.Message.Render(v.Message),
		s.RuleID.Render("("+v.RuleID+")"),
	))

	if sourceLine != "" {
		builder.WriteString(s.formatSourceContext(sourceLine, v.Location.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return s.Error.Render("error")
	case lint.SeverityWarning:
		return s.Warning.Render("warning")
	case lint.SeverityInfo:
		return s.Info.Render("info")
	default:
		return sev.String()
	}
}

// formatSourceContext renders the offending line with a caret marker.
func (s *Styles) formatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}
