package imports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// writeFiles creates the given files under dir and returns the loader
// plus the root document.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func loadRoot(t *testing.T, dir, name string) *document.Document {
	t.Helper()
	doc, err := document.NewFileLoader().Load(filepath.Join(dir, name))
	require.NoError(t, err)
	return doc
}

func TestResolveCleanChain(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "# Root\n@a.md\n",
		"a.md":      "# A\n@b.md\n",
		"b.md":      "# B\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "CLAUDE.md"))
	assert.Empty(t, violations)
}

func TestResolveMissingTarget(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "@missing.md\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "CLAUDE.md"))

	require.Len(t, violations, 1)
	assert.Equal(t, RuleID, violations[0].RuleID)
	assert.Equal(t, lint.SeverityError, violations[0].Severity)
	assert.Contains(t, violations[0].Message, "does not exist")
	assert.Equal(t, document.Location{Line: 1, Column: 1}, violations[0].Location)
}

func TestResolveSelfCycle(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "@CLAUDE.md\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "CLAUDE.md"))

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "Import cycle detected")
	// The full chain names the file twice: once in the chain, once as
	// the re-entry point.
	root := filepath.Join(dir, "CLAUDE.md")
	assert.Contains(t, violations[0].Message, root+" -> "+root)
}

func TestResolveIndirectCycle(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "@b.md\n",
		"b.md": "@a.md\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "a.md"))

	require.Len(t, violations, 1)
	msg := violations[0].Message
	assert.Contains(t, msg, "Import cycle detected")
	assert.Contains(t, msg, filepath.Join(dir, "a.md"))
	assert.Contains(t, msg, filepath.Join(dir, "b.md"))
}

func TestResolveDiamondIsNotACycle(t *testing.T) {
	// root imports a and b; both import shared. The same file reached
	// via two non-cyclic paths must not be flagged.
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"root.md":   "@a.md\n@b.md\n",
		"a.md":      "@shared.md\n",
		"b.md":      "@shared.md\n",
		"shared.md": "# Shared\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "root.md"))
	assert.Empty(t, violations)
}

func TestResolveDepthLimit(t *testing.T) {
	const maxDepth = 3

	dir := t.TempDir()

	// Chain of exactly maxDepth hops: fine.
	files := map[string]string{"d3.md": "# End\n"}
	for i := maxDepth - 1; i >= 0; i-- {
		files[fmt.Sprintf("d%d.md", i)] = fmt.Sprintf("@d%d.md\n", i+1)
	}
	writeFiles(t, dir, files)

	resolver := NewResolver(document.NewFileLoader(), maxDepth)
	violations := resolver.Resolve(loadRoot(t, dir, "d0.md"))
	assert.Empty(t, violations, "a chain of exactly maxDepth hops is allowed")

	// One more hop crosses the limit.
	writeFiles(t, dir, map[string]string{
		"d3.md": "@d4.md\n",
		"d4.md": "# Too deep\n",
	})

	violations = resolver.Resolve(loadRoot(t, dir, "d0.md"))
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "exceeds maximum depth 3")
	assert.Contains(t, violations[0].Message, filepath.Join(dir, "d4.md"))
}

func TestResolveLiteralSpansAreInert(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "Use `@nonexistent.md` like this:\n```\n@also-nonexistent.md\n```\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "CLAUDE.md"))
	assert.Empty(t, violations)
}

func TestResolveRelativeToIncludingDocument(t *testing.T) {
	// nested/inner.md imports sibling.md, which lives in nested/, not at
	// the root. Resolution is relative to the immediate parent.
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"root.md":           "@nested/inner.md\n",
		"nested/inner.md":   "@sibling.md\n@../root-level.md\n",
		"nested/sibling.md": "# Sibling\n",
		"root-level.md":     "# Up one\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "root.md"))
	assert.Empty(t, violations)
}

func TestResolveHomeRelative(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "@~/global.md\n",
		"global.md": "# Global\n",
	})

	resolver := NewResolver(document.NewFileLoader(), 5)
	resolver.homeDir = dir

	violations := resolver.Resolve(loadRoot(t, dir, "CLAUDE.md"))
	assert.Empty(t, violations)
}

func TestResolveUnreadableTargetIsDeadEnd(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "@locked.md\n",
		"locked.md": "@whatever.md\n",
	})
	require.NoError(t, os.Chmod(filepath.Join(dir, "locked.md"), 0o000))

	resolver := NewResolver(document.NewFileLoader(), 5)
	violations := resolver.Resolve(loadRoot(t, dir, "CLAUDE.md"))
	assert.Empty(t, violations, "unreadable nested files are dead ends, not violations")
}

func TestImportsRule(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CLAUDE.md": "@missing.md\n",
	})

	rule := NewRule(nil)
	assert.Equal(t, RuleID, rule.ID())
	assert.Equal(t, lint.SeverityError, rule.DefaultSeverity())
	assert.False(t, rule.CanFix())

	cfg := config.New()
	ruleCtx := lint.NewRuleContext(context.Background(), loadRoot(t, dir, "CLAUDE.md"), cfg, nil)

	violations, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "does not exist")
}

func TestImportsRuleMaxDepthOption(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "@b.md\n",
		"b.md": "@c.md\n",
		"c.md": "# End\n",
	})

	rule := NewRule(nil)
	cfg := config.New()
	ruleCfg := &config.RuleConfig{Options: map[string]any{"max_depth": 1}}
	ruleCtx := lint.NewRuleContext(context.Background(), loadRoot(t, dir, "a.md"), cfg, ruleCfg)

	violations, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "exceeds maximum depth 1")
}
