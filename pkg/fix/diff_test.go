package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiffNoChanges(t *testing.T) {
	d := NewDiff("test.md", "a\nb\n", "a\nb\n")
	assert.True(t, d.Empty())
}

func TestNewDiffChangedLine(t *testing.T) {
	d := NewDiff("test.md", "one \ntwo", "one\ntwo")
	require.False(t, d.Empty())

	var removed, added []string
	for _, l := range d.Lines {
		switch l.Kind {
		case '-':
			removed = append(removed, l.Text)
		case '+':
			added = append(added, l.Text)
		}
	}
	assert.Equal(t, []string{"one "}, removed)
	assert.Equal(t, []string{"one"}, added)
}

func TestNewDiffAddedAndRemovedLines(t *testing.T) {
	d := NewDiff("test.md", "a\nb\nc", "a\nc\nd")
	require.False(t, d.Empty())

	out := d.String()
	assert.Contains(t, out, "--- test.md")
	assert.Contains(t, out, "- b")
	assert.Contains(t, out, "+ d")
	assert.Contains(t, out, "  a")
}
