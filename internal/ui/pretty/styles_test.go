package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	assert.False(t, IsColorEnabled("auto", &buf), "non-TTY writer disables color in auto mode")
}

func TestFormatViolation(t *testing.T) {
	styles := NewStyles(false)

	v := lint.Violation{
		RuleID:   "CL003",
		Message:  "Trailing whitespace",
		Severity: lint.SeverityWarning,
		Location: document.Location{Line: 4, Column: 12},
	}

	out := styles.FormatViolation(v, "CLAUDE.md", "some content ")
	assert.Contains(t, out, "CLAUDE.md:4:12")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "Trailing whitespace")
	assert.Contains(t, out, "(CL003)")
	assert.Contains(t, out, "^")
}

func TestFormatViolationWholeLineHasNoCaret(t *testing.T) {
	styles := NewStyles(false)

	v := lint.Violation{
		RuleID:   "CL007",
		Message:  "File too large",
		Severity: lint.SeverityError,
		Location: document.Location{Line: 1, Column: 0},
	}

	out := styles.FormatViolation(v, "AGENTS.md", "# Title")
	assert.Contains(t, out, "AGENTS.md:1:0")
	assert.NotContains(t, out, "^")
}

func TestFormatSeverity(t *testing.T) {
	styles := NewStyles(false)
	assert.Equal(t, "error", styles.FormatSeverity(lint.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(lint.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(lint.SeverityInfo))
}
