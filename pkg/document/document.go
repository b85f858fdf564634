// Package document provides the immutable document model shared by the
// lint engine, the fix engine, and the import resolver: a file snapshot
// with line-based addressing, plus the Location and Span value types.
package document

import "strings"

// Document is an immutable snapshot of a file's text at a point in time.
// Externally visible positions into a Document are 1-based; the Lines
// accessors take 1-based line numbers.
type Document struct {
	// Path is the absolute path of the file (may be empty for in-memory
	// content, e.g. in tests).
	Path string

	// Content is the full text.
	Content string

	lines []string
}

// New creates a Document from literal text.
// An empty file yields a single empty line, so every Document has at
// least one addressable line.
func New(path, content string) *Document {
	return &Document{
		Path:    path,
		Content: content,
		lines:   strings.Split(content, "\n"),
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of the 1-based line number, without its
// newline. It returns ("", false) when the line number is out of range.
func (d *Document) Line(n int) (string, bool) {
	if n < 1 || n > len(d.lines) {
		return "", false
	}
	return d.lines[n-1], true
}

// Lines returns a copy of the document's lines. The copy keeps the
// Document itself immutable while letting callers splice freely.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}
