package lint

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ctxlint/pkg/document"
)

// Violation is a single rule failure found in a document.
// Violations are value records; once constructed they are not mutated.
type Violation struct {
	// RuleID is the identifier of the rule that produced this violation.
	RuleID string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the violation.
	Severity Severity

	// Location is the 1-based position of the issue. Column 0 means the
	// violation applies to the whole line.
	Location document.Location
}

// NewViolation constructs a Violation, validating the fields a rule
// author controls. Empty rule IDs or messages are programmer errors and
// fail here rather than surfacing later as blank report entries.
func NewViolation(ruleID, message string, severity Severity, loc document.Location) (Violation, error) {
	if strings.TrimSpace(ruleID) == "" {
		return Violation{}, fmt.Errorf("violation: rule id is empty")
	}
	if strings.TrimSpace(message) == "" {
		return Violation{}, fmt.Errorf("violation: message is empty for rule %s", ruleID)
	}
	if loc.Line < 1 {
		return Violation{}, fmt.Errorf("violation: line %d is not positive for rule %s", loc.Line, ruleID)
	}
	if loc.Column < 0 {
		return Violation{}, fmt.Errorf("violation: column %d is negative for rule %s", loc.Column, ruleID)
	}

	return Violation{
		RuleID:   ruleID,
		Message:  message,
		Severity: severity,
		Location: loc,
	}, nil
}

// String renders the violation in "line:col severity rule message" form.
func (v Violation) String() string {
	return fmt.Sprintf("%s %s %s %s", v.Location, v.Severity, v.RuleID, v.Message)
}
