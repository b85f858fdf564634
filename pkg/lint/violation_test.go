package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ctxlint/pkg/document"
)

func TestNewViolation(t *testing.T) {
	loc := document.Location{Line: 3, Column: 1}

	v, err := NewViolation("CL003", "Trailing whitespace", SeverityWarning, loc)
	require.NoError(t, err)
	assert.Equal(t, "CL003", v.RuleID)
	assert.Equal(t, loc, v.Location)
}

func TestNewViolationValidation(t *testing.T) {
	loc := document.Location{Line: 1, Column: 0}

	tests := []struct {
		name    string
		ruleID  string
		message string
		loc     document.Location
	}{
		{"empty rule id", "", "message", loc},
		{"whitespace rule id", "   ", "message", loc},
		{"empty message", "CL001", "", loc},
		{"whitespace message", "CL001", "  \t ", loc},
		{"zero line", "CL001", "message", document.Location{Line: 0, Column: 0}},
		{"negative column", "CL001", "message", document.Location{Line: 1, Column: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViolation(tt.ruleID, tt.message, SeverityInfo, tt.loc)
			assert.Error(t, err)
		})
	}
}

func TestViolationString(t *testing.T) {
	v, err := NewViolation("CL006", "Line too long", SeverityError,
		document.Location{Line: 12, Column: 121})
	require.NoError(t, err)
	assert.Equal(t, "12:121 error CL006 Line too long", v.String())
}
