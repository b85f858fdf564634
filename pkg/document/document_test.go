package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines int
	}{
		{
			name:      "empty file yields one empty line",
			content:   "",
			wantLines: 1,
		},
		{
			name:      "single line without newline",
			content:   "# Title",
			wantLines: 1,
		},
		{
			name:      "trailing newline yields empty final line",
			content:   "# Title\n",
			wantLines: 2,
		},
		{
			name:      "multiple lines",
			content:   "one\ntwo\nthree",
			wantLines: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New("test.md", tt.content)
			assert.Equal(t, tt.wantLines, doc.LineCount())
			assert.Equal(t, tt.content, doc.Content)
		})
	}
}

func TestDocumentLine(t *testing.T) {
	doc := New("test.md", "one\ntwo\nthree")

	line, ok := doc.Line(2)
	require.True(t, ok)
	assert.Equal(t, "two", line)

	_, ok = doc.Line(0)
	assert.False(t, ok)

	_, ok = doc.Line(4)
	assert.False(t, ok)
}

func TestDocumentLinesIsACopy(t *testing.T) {
	doc := New("test.md", "one\ntwo")

	lines := doc.Lines()
	lines[0] = "mutated"

	line, ok := doc.Line(1)
	require.True(t, ok)
	assert.Equal(t, "one", line, "mutating the returned slice must not affect the document")
}

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Location{Line: 1, Column: 0}, loc)

	_, err = NewLocation(0, 0)
	assert.Error(t, err)

	_, err = NewLocation(1, -1)
	assert.Error(t, err)
}

func TestLocationOrdering(t *testing.T) {
	a := Location{Line: 1, Column: 5}
	b := Location{Line: 2, Column: 0}
	c := Location{Line: 2, Column: 3}

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, c.Before(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, b.Compare(Location{Line: 2, Column: 0}))
	assert.Equal(t, 1, c.Compare(b))
}

func TestNewSpanRejectsReversed(t *testing.T) {
	start := Location{Line: 2, Column: 4}
	end := Location{Line: 1, Column: 0}

	_, err := NewSpan(start, end)
	assert.Error(t, err)

	sp, err := NewSpan(end, start)
	require.NoError(t, err)
	assert.False(t, sp.IsSingleLine())
}

func TestSpanOverlaps(t *testing.T) {
	span := func(sl, sc, el, ec int) Span {
		return Span{Start: Location{Line: sl, Column: sc}, End: Location{Line: el, Column: ec}}
	}

	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint lines", span(1, 0, 1, 5), span(2, 0, 2, 5), false},
		{"touching ranges do not overlap", span(1, 0, 1, 5), span(1, 5, 1, 9), false},
		{"intersecting ranges", span(1, 0, 1, 5), span(1, 3, 1, 9), true},
		{"nested ranges", span(1, 0, 3, 0), span(2, 1, 2, 4), true},
		{"identical insertion points", span(1, 2, 1, 2), span(1, 2, 1, 2), false},
		{"insertion inside replacement", span(1, 0, 1, 5), span(1, 2, 1, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CLAUDE.md")
	require.NoError(t, os.WriteFile(path, []byte("# Project\n"), 0o644))

	loader := NewFileLoader()

	doc, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "# Project\n", doc.Content)
	assert.True(t, filepath.IsAbs(doc.Path))

	_, err = loader.Load(filepath.Join(dir, "missing.md"))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, loader.Exists(path))
	assert.False(t, loader.Exists(dir), "directories are not loadable documents")
	assert.False(t, loader.Exists(filepath.Join(dir, "missing.md")))
}
