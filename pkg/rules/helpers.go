package rules

import (
	"strings"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// fenceDelimiter reports whether the line opens or closes a fenced
// code block.
func fenceDelimiter(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// fencedLines returns the set of 1-based line numbers inside fenced
// blocks, delimiters included.
func fencedLines(doc *document.Document) map[int]bool {
	inside := make(map[int]bool)
	inFence := false

	for n := 1; n <= doc.LineCount(); n++ {
		line, _ := doc.Line(n)
		if fenceDelimiter(line) {
			inside[n] = true
			inFence = !inFence
			continue
		}
		if inFence {
			inside[n] = true
		}
	}

	return inside
}

// mustViolation builds a violation from rule-controlled inputs.
// The inputs are authored in this package, so construction cannot fail
// at runtime; an error here is a bug in the rule.
func mustViolation(ruleID, message string, loc document.Location) lint.Violation {
	v, err := lint.NewViolation(ruleID, message, lint.SeverityWarning, loc)
	if err != nil {
		panic(err)
	}
	return v
}
