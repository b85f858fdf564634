package fix

import (
	"strings"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/document"
)

// Result is the outcome of applying a set of fixes to a document.
type Result struct {
	// Fixed is true iff at least one fix was applied.
	Fixed bool

	// Content is the resulting document text. When Fixed is false it
	// equals the original content.
	Content string

	// Applied lists the fixes that were applied, in application order
	// (descending document order). Callers needing reading order must
	// re-sort.
	Applied []Fix

	// Skipped lists fixes dropped before application because their span
	// overlapped an earlier fix's span. Overlapping fixes are never
	// reconciled; the earlier-in-document fix wins.
	Skipped []Fix
}

// Apply applies a maximal non-conflicting subset of fixes to the
// document and returns the new text. The input document is never
// mutated.
//
// Fixes are applied in descending document order (last span first), so
// an applied edit can never invalidate the coordinates of an edit that
// is still pending: everything still pending lies strictly earlier in
// the document. The result is therefore independent of the input order
// of the fixes.
//
// A fix whose span references a line or column outside the document is
// skipped with a warning rather than failing the batch; one malformed
// fix must not abort remediation of the rest.
func Apply(doc *document.Document, fixes []Fix) Result {
	if len(fixes) == 0 {
		return Result{Fixed: false, Content: doc.Content}
	}

	logger := logging.Default()

	accepted, conflicting := filterConflicts(fixes)
	for _, f := range conflicting {
		logger.Warn("skipping conflicting fix",
			logging.FieldPath, doc.Path,
			logging.FieldSpan, f.Span.String(),
			logging.FieldFixDesc, f.Description,
		)
	}

	SortDescending(accepted)

	lines := doc.Lines()
	var applied []Fix

	for _, f := range accepted {
		spliced, ok := splice(lines, f)
		if !ok {
			logger.Warn("skipping fix with out-of-range span",
				logging.FieldPath, doc.Path,
				logging.FieldSpan, f.Span.String(),
				logging.FieldFixDesc, f.Description,
			)
			continue
		}
		lines = spliced
		applied = append(applied, f)
	}

	if len(applied) == 0 {
		return Result{Fixed: false, Content: doc.Content, Skipped: conflicting}
	}

	return Result{
		Fixed:   true,
		Content: strings.Join(lines, "\n"),
		Applied: applied,
		Skipped: conflicting,
	}
}

// splice applies a single fix to the line array, returning the new
// array and whether the span was in range.
func splice(lines []string, f Fix) ([]string, bool) {
	startIdx := f.Span.Start.Line - 1
	endIdx := f.Span.End.Line - 1
	if startIdx < 0 || endIdx >= len(lines) {
		return lines, false
	}

	// Columns are 1-based; the splice points are the 0-based offsets
	// immediately before the addressed characters.
	startCol := f.Span.Start.Column - 1
	endCol := f.Span.End.Column - 1
	if startCol < 0 || startCol > len(lines[startIdx]) {
		return lines, false
	}
	if endCol < 0 || endCol > len(lines[endIdx]) {
		return lines, false
	}

	if startIdx == endIdx {
		line := lines[startIdx]
		if endCol < startCol {
			return lines, false
		}
		lines[startIdx] = line[:startCol] + f.Text + line[endCol:]
		return lines, true
	}

	// Multi-line: collapse the whole range into a single line built from
	// the start line's prefix, the replacement, and the end line's
	// suffix. A replacement containing newlines re-expands when the
	// lines are joined.
	merged := lines[startIdx][:startCol] + f.Text + lines[endIdx][endCol:]

	out := make([]string, 0, len(lines)-(endIdx-startIdx))
	out = append(out, lines[:startIdx]...)
	out = append(out, merged)
	out = append(out, lines[endIdx+1:]...)
	return out, true
}

// filterConflicts partitions fixes into a non-overlapping accepted set
// and the overlapping remainder. Fixes are considered in ascending
// document order; a fix intersecting an already-accepted span is
// dropped, so the earlier-in-document fix wins deterministically.
func filterConflicts(fixes []Fix) (accepted, skipped []Fix) {
	ordered := make([]Fix, len(fixes))
	copy(ordered, fixes)
	SortAscending(ordered)

	for _, f := range ordered {
		conflict := false
		for i := len(accepted) - 1; i >= 0; i-- {
			if accepted[i].Span.Overlaps(f.Span) {
				conflict = true
				break
			}
			// Accepted fixes are ordered; once one ends before this fix
			// starts, earlier ones cannot overlap either.
			if !f.Span.Start.Before(accepted[i].Span.End) {
				break
			}
		}
		if conflict {
			skipped = append(skipped, f)
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted, skipped
}
