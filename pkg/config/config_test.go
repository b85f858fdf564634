package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "warning", cfg.SeverityDefault)
	assert.Equal(t, DefaultMaxImportDepth, cfg.MaxImportDepth)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.Backups.Enabled)
	assert.Contains(t, cfg.FileNames, "CLAUDE.md")
	assert.NotNil(t, cfg.Rules)
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
severity_default: error
max_import_depth: 3
rules:
  line-length:
    enabled: false
    options:
      max: 100
  file-size:
    severity: error
ignore:
  - "**/vendor/**"
`)

	cfg, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.SeverityDefault)
	assert.Equal(t, 3, cfg.MaxImportDepth)
	assert.Equal(t, []string{"**/vendor/**"}, cfg.Ignore)

	rc, ok := cfg.Rules["line-length"]
	require.True(t, ok)
	require.NotNil(t, rc.Enabled)
	assert.False(t, *rc.Enabled)
	assert.Equal(t, 100, rc.Options["max"])

	rc, ok = cfg.Rules["file-size"]
	require.True(t, ok)
	require.NotNil(t, rc.Severity)
	assert.Equal(t, "error", *rc.Severity)

	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultFileNames(), cfg.FileNames)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("rules: [not-a-map"))
	assert.Error(t, err)
}

func TestFromYAMLZeroDepthGetsDefault(t *testing.T) {
	cfg, err := FromYAML([]byte("max_import_depth: 0"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxImportDepth, cfg.MaxImportDepth)
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Ignore = []string{"docs/**"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.SeverityDefault, parsed.SeverityDefault)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
}

func TestStarterTemplateParses(t *testing.T) {
	cfg, err := FromYAML([]byte(StarterTemplate))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxImportDepth)
	assert.Contains(t, cfg.Rules, "line-length")
}
