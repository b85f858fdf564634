package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShebang(t *testing.T) {
	lang, ok := Detect([]byte("#!/bin/bash\necho hello\n"))
	require.True(t, ok)
	assert.Equal(t, "bash", lang)
}

func TestDetectEmpty(t *testing.T) {
	_, ok := Detect(nil)
	assert.False(t, ok)

	_, ok = Detect([]byte("   \n  "))
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "bash", normalize("Shell"))
	assert.Equal(t, "cpp", normalize("C++"))
	assert.Equal(t, "go", normalize("Go"))
	assert.Equal(t, "json", normalize("JSON"))
}
