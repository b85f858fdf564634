package document

import "fmt"

// Location is a 1-based (line, column) point within a Document.
// Column 0 addresses the whole line rather than a specific character,
// which is how whole-line-scope violations are reported.
type Location struct {
	Line   int
	Column int
}

// NewLocation creates a Location after validating its fields.
// Line must be >= 1 and column must be >= 0.
func NewLocation(line, column int) (Location, error) {
	if line < 1 {
		return Location{}, fmt.Errorf("invalid location: line %d is not positive", line)
	}
	if column < 0 {
		return Location{}, fmt.Errorf("invalid location: column %d is negative", column)
	}
	return Location{Line: line, Column: column}, nil
}

// Before reports whether l is strictly earlier in the document than other.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// Compare orders two locations by (line, column).
// It returns -1, 0, or 1.
func (l Location) Compare(other Location) int {
	switch {
	case l.Line < other.Line:
		return -1
	case l.Line > other.Line:
		return 1
	case l.Column < other.Column:
		return -1
	case l.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// String renders the location as "line:column".
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span delimits a contiguous region of a Document between two locations.
type Span struct {
	Start Location
	End   Location
}

// NewSpan creates a Span after validating that start does not come
// after end. Malformed spans are rejected here rather than normalized,
// so that a fix generator producing one fails loudly at the boundary.
func NewSpan(start, end Location) (Span, error) {
	if end.Before(start) {
		return Span{}, fmt.Errorf("invalid span: end %s precedes start %s", end, start)
	}
	return Span{Start: start, End: end}, nil
}

// IsSingleLine reports whether the span starts and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Overlaps reports whether two spans intersect. Spans are half-open, so
// a span that ends exactly where another starts does not overlap it.
func (s Span) Overlaps(other Span) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// String renders the span as "start-end".
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
