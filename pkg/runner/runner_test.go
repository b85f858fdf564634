package runner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/lint"
	"github.com/yaklabco/ctxlint/pkg/rules"
)

func newTestRunner() *Runner {
	registry := rules.NewRegistry(nil)
	return New(lint.NewEngine(registry), rules.Generators())
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestRunLintsDiscoveredFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"CLAUDE.md":          "# Root\n",
		"sub/CLAUDE.md":      "no title here\n",
		"sub/AGENTS.md":      "# Agents\n",
		"sub/README.md":      "#Ignored by discovery\n",
		"notes/GEMINI.md":    "# Gemini\n",
		".hidden/CLAUDE.md":  "# Hidden\n",
		"vendor/x/CLAUDE.md": "# Vendored\n",
	})

	r := newTestRunner()
	result, err := r.Run(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**"},
		Config:       config.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.FilesDiscovered)
	assert.Equal(t, 4, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.True(t, result.HasIssues())

	// Outcomes come back sorted by path.
	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}
	assert.True(t, sort.StringsAreSorted(paths))
}

func TestRunExplicitFileBypassesNameFilter(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"README.md": "# Readme\n",
	})

	r := newTestRunner()
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"README.md"},
		WorkingDir: dir,
		Config:     config.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
}

func TestRunFixWritesBack(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"CLAUDE.md": "# Title  \ntext\n",
	})

	r := newTestRunner()
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Fix:        true,
		Config:     config.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.ViolationsFixed)

	content, err := os.ReadFile(filepath.Join(dir, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\ntext\n", string(content))
}

func TestRunFixDryRunLeavesFileAlone(t *testing.T) {
	original := "# Title  \ntext\n"
	dir := writeTree(t, map[string]string{
		"CLAUDE.md": original,
	})

	r := newTestRunner()
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Fix:        true,
		DryRun:     true,
		Config:     config.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.ViolationsFixed)

	content, err := os.ReadFile(filepath.Join(dir, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestRunFixWritesBackupSidecar(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"CLAUDE.md": "# Title  \n",
	})

	r := newTestRunner()
	_, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Fix:        true,
		Backup:     true,
		Config:     config.New(),
	})
	require.NoError(t, err)

	backup, err := os.ReadFile(filepath.Join(dir, "CLAUDE.md.ctxlint.bak"))
	require.NoError(t, err)
	assert.Equal(t, "# Title  \n", string(backup))
}

func TestRunFixReportsRemainingViolations(t *testing.T) {
	// Trailing space is fixable, the missing title is not.
	dir := writeTree(t, map[string]string{
		"CLAUDE.md": "plain text  \n",
	})

	r := newTestRunner()
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Fix:        true,
		Config:     config.New(),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	require.NotNil(t, outcome.Lint)
	require.Len(t, outcome.Lint.Violations, 1)
	assert.Equal(t, "CL001", outcome.Lint.Violations[0].RuleID)
}

func TestRunEmptyDirectory(t *testing.T) {
	r := newTestRunner()
	result, err := r.Run(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Config:     config.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
}

func TestRunCancelled(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"CLAUDE.md": "# Title\n",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner()
	_, err := r.Run(ctx, Options{WorkingDir: dir, Config: config.New()})
	assert.Error(t, err)
}

func TestHasFailures(t *testing.T) {
	result := &Result{Stats: newStats()}
	assert.False(t, result.HasFailures())

	result.Stats.ViolationsBySeverity["error"] = 1
	assert.True(t, result.HasFailures())
}
