package fix

import (
	"fmt"
	"strings"
)

// DiffLine is a single line of a rendered diff.
type DiffLine struct {
	// Kind is ' ' for context, '-' for removed, '+' for added.
	Kind byte

	// Text is the line content without its newline.
	Text string
}

// Diff is a line-level comparison of a document before and after
// fixing, used for dry-run previews. It is display-only; the fix
// engine itself never diffs.
type Diff struct {
	Path  string
	Lines []DiffLine
}

// Empty reports whether the diff contains no changes.
func (d *Diff) Empty() bool {
	for _, l := range d.Lines {
		if l.Kind != ' ' {
			return false
		}
	}
	return true
}

// NewDiff computes a line diff between the original and fixed text.
func NewDiff(path, original, fixed string) *Diff {
	oldLines := strings.Split(original, "\n")
	newLines := strings.Split(fixed, "\n")

	return &Diff{
		Path:  path,
		Lines: diffLines(oldLines, newLines),
	}
}

// diffLines produces a full-file diff using an LCS table. Context files
// are small, so the quadratic table is acceptable.
func diffLines(oldLines, newLines []string) []DiffLine {
	n, m := len(oldLines), len(newLines)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var out []DiffLine
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			out = append(out, DiffLine{Kind: ' ', Text: oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out = append(out, DiffLine{Kind: '-', Text: oldLines[i]})
			i++
		default:
			out = append(out, DiffLine{Kind: '+', Text: newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		out = append(out, DiffLine{Kind: '-', Text: oldLines[i]})
	}
	for ; j < m; j++ {
		out = append(out, DiffLine{Kind: '+', Text: newLines[j]})
	}

	return out
}

// String renders the diff in unified-style "-/+" form with a header.
func (d *Diff) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s (fixed)\n", d.Path, d.Path)
	for _, l := range d.Lines {
		b.WriteByte(l.Kind)
		b.WriteByte(' ')
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
