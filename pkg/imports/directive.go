// Package imports resolves @path inclusion directives across documents:
// extraction (with literal-span suppression), path resolution over three
// dialects, and bounded-depth cycle-aware traversal of the import graph.
package imports

import (
	"regexp"
	"strings"

	"github.com/yaklabco/ctxlint/pkg/document"
)

// directivePattern matches an inclusion directive: "@" followed by a
// bare path.
var directivePattern = regexp.MustCompile(`@([A-Za-z0-9_.~/-]+)`)

// Directive is one @path reference found in a document.
type Directive struct {
	// Path is the import path as written, without the leading "@".
	Path string

	// Location is the 1-based position of the "@" token.
	Location document.Location
}

// Extract scans the document for inclusion directives. Directives
// inside fenced code blocks or inline backtick spans are documentation
// about the syntax, not live imports, and are not returned.
func Extract(doc *document.Document) []Directive {
	var directives []Directive
	inFence := false

	for n := 1; n <= doc.LineCount(); n++ {
		line, _ := doc.Line(n)

		if isFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		for _, match := range directivePattern.FindAllStringSubmatchIndex(line, -1) {
			start := match[0]
			if insideInlineCode(line, start) {
				continue
			}
			directives = append(directives, Directive{
				Path:     line[match[2]:match[3]],
				Location: document.Location{Line: n, Column: start + 1},
			})
		}
	}

	return directives
}

// isFenceDelimiter reports whether the line opens or closes a fenced
// block (triple backtick or triple tilde, with optional indentation).
func isFenceDelimiter(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// insideInlineCode reports whether the offset sits inside an inline
// backtick span: an odd number of unescaped backticks precede it on the
// line.
func insideInlineCode(line string, offset int) bool {
	count := 0
	for i := 0; i < offset; i++ {
		if line[i] == '`' && (i == 0 || line[i-1] != '\\') {
			count++
		}
	}
	return count%2 == 1
}
