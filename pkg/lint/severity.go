package lint

import (
	"fmt"
	"strings"
)

// Severity classifies a violation. The values are totally ordered:
// Info < Warning < Error.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a config string to a Severity.
// It accepts "info", "warning"/"warn", and "error", case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

// HighestSeverity returns the maximum severity in the collection,
// or Info when the collection is empty.
func HighestSeverity(severities []Severity) Severity {
	highest := SeverityInfo
	for _, s := range severities {
		if s > highest {
			highest = s
		}
	}
	return highest
}

// HighestViolationSeverity returns the maximum severity across violations,
// or Info when there are none.
func HighestViolationSeverity(violations []Violation) Severity {
	highest := SeverityInfo
	for _, v := range violations {
		if v.Severity > highest {
			highest = v.Severity
		}
	}
	return highest
}
