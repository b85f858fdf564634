package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

func ruleCtx(t *testing.T, content string, ruleCfg *config.RuleConfig) *lint.RuleContext {
	t.Helper()
	doc := document.New("test.md", content)
	return lint.NewRuleContext(context.Background(), doc, config.New(), ruleCfg)
}

func applyFixes(t *testing.T, rule fix.Generator, violations []lint.Violation, content string) string {
	t.Helper()
	fixes := rule.GenerateFixes(violations, content)
	result := fix.Apply(document.New("test.md", content), fixes)
	require.True(t, result.Fixed)
	return result.Content
}

func TestRequireTitleRule(t *testing.T) {
	rule := NewRequireTitleRule()

	tests := []struct {
		name    string
		content string
		want    int
		line    int
	}{
		{name: "title present", content: "# Project\n\nBody.\n", want: 0},
		{name: "title after blank lines", content: "\n\n# Project\n", want: 0},
		{name: "no title", content: "Just prose.\n", want: 1, line: 1},
		{name: "wrong level", content: "## Section\n", want: 1, line: 1},
		{name: "missing space not a title", content: "#Project\n", want: 1, line: 1},
		{name: "blank file", content: "", want: 0},
		{name: "only blank lines", content: "\n\n\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			require.Len(t, violations, tt.want)
			if tt.want > 0 {
				assert.Equal(t, "CL001", violations[0].RuleID)
				assert.Equal(t, tt.line, violations[0].Location.Line)
			}
		})
	}
}

func TestHeadingSpaceRule(t *testing.T) {
	rule := NewHeadingSpaceRule()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "proper headings", content: "# Title\n\n## Section\n", want: 0},
		{name: "missing space", content: "#Title\n", want: 1},
		{name: "missing space deeper level", content: "# Title\n\n###Section\n", want: 1},
		{name: "seven hashes not a heading", content: "#######Not\n", want: 0},
		{name: "bare marker", content: "#\n", want: 0},
		{name: "inside fence ignored", content: "```\n#comment\n```\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			assert.Len(t, violations, tt.want)
		})
	}
}

func TestHeadingSpaceRuleFix(t *testing.T) {
	rule := NewHeadingSpaceRule()
	content := "#Title\n\n##Section\n"

	violations, err := rule.Apply(ruleCtx(t, content, nil))
	require.NoError(t, err)
	require.Len(t, violations, 2)

	fixed := applyFixes(t, rule, violations, content)
	assert.Equal(t, "# Title\n\n## Section\n", fixed)
}

func TestTrailingWhitespaceRule(t *testing.T) {
	rule := NewTrailingWhitespaceRule()

	tests := []struct {
		name    string
		content string
		want    int
		column  int
	}{
		{name: "clean", content: "one\ntwo\n", want: 0},
		{name: "trailing spaces", content: "one  \ntwo\n", want: 1, column: 4},
		{name: "trailing tab", content: "one\t\n", want: 1, column: 4},
		{name: "whitespace-only line ignored", content: "one\n   \ntwo\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			require.Len(t, violations, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.column, violations[0].Location.Column)
			}
		})
	}
}

func TestTrailingWhitespaceRuleFix(t *testing.T) {
	rule := NewTrailingWhitespaceRule()
	content := "one  \ntwo\nthree \t\n"

	violations, err := rule.Apply(ruleCtx(t, content, nil))
	require.NoError(t, err)
	require.Len(t, violations, 2)

	fixed := applyFixes(t, rule, violations, content)
	assert.Equal(t, "one\ntwo\nthree\n", fixed)
}

func TestFinalNewlineRule(t *testing.T) {
	rule := NewFinalNewlineRule()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "single final newline", content: "# Title\n", want: 0},
		{name: "missing newline", content: "# Title", want: 1},
		{name: "extra newlines", content: "# Title\n\n\n", want: 1},
		{name: "empty file", content: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			assert.Len(t, violations, tt.want)
		})
	}
}

func TestFinalNewlineRuleFix(t *testing.T) {
	rule := NewFinalNewlineRule()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "adds missing newline", content: "# Title", want: "# Title\n"},
		{name: "removes extra newlines", content: "# Title\n\n\n", want: "# Title\n"},
		{name: "removes long blank tail", content: "a\nb\n\n\n\n", want: "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			require.Len(t, violations, 1)

			fixed := applyFixes(t, rule, violations, tt.content)
			assert.Equal(t, tt.want, fixed)
		})
	}
}

func TestHardTabsRule(t *testing.T) {
	rule := NewHardTabsRule()

	tests := []struct {
		name    string
		content string
		want    int
		column  int
	}{
		{name: "no tabs", content: "one\n    two\n", want: 0},
		{name: "leading tab", content: "\tone\n", want: 1, column: 1},
		{name: "embedded tab", content: "one\ttwo\n", want: 1, column: 4},
		{name: "one violation per line", content: "\ta\tb\n", want: 1, column: 1},
		{name: "tab inside fence ignored", content: "```\n\tindented\n```\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			require.Len(t, violations, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.column, violations[0].Location.Column)
			}
		})
	}
}

func TestHardTabsRuleFixReplacesEveryTab(t *testing.T) {
	rule := NewHardTabsRule()
	content := "\tone\ttwo\n"

	violations, err := rule.Apply(ruleCtx(t, content, nil))
	require.NoError(t, err)
	require.Len(t, violations, 1)

	fixed := applyFixes(t, rule, violations, content)
	assert.Equal(t, "    one    two\n", fixed)
}

func TestLineLengthRule(t *testing.T) {
	rule := NewLineLengthRule()

	t.Run("within default limit", func(t *testing.T) {
		violations, err := rule.Apply(ruleCtx(t, strings.Repeat("a", 120)+"\n", nil))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("exceeds default limit", func(t *testing.T) {
		violations, err := rule.Apply(ruleCtx(t, strings.Repeat("a", 121)+"\n", nil))
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, 121, violations[0].Location.Column)
	})

	t.Run("measures runes not bytes", func(t *testing.T) {
		violations, err := rule.Apply(ruleCtx(t, strings.Repeat("é", 120)+"\n", nil))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("custom limit", func(t *testing.T) {
		cfg := &config.RuleConfig{Options: map[string]any{"max": 10}}
		violations, err := rule.Apply(ruleCtx(t, "a short line over ten\n", cfg))
		require.NoError(t, err)
		assert.Len(t, violations, 1)
	})

	t.Run("fenced lines exempt", func(t *testing.T) {
		content := "```\n" + strings.Repeat("x", 200) + "\n```\n"
		violations, err := rule.Apply(ruleCtx(t, content, nil))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})
}

func TestFileSizeRule(t *testing.T) {
	rule := NewFileSizeRule()

	t.Run("under limits", func(t *testing.T) {
		violations, err := rule.Apply(ruleCtx(t, "# Title\n", nil))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("too many lines", func(t *testing.T) {
		cfg := &config.RuleConfig{Options: map[string]any{"max_lines": 3}}
		violations, err := rule.Apply(ruleCtx(t, "a\nb\nc\nd\n", nil))
		require.NoError(t, err)
		assert.Empty(t, violations)

		violations, err = rule.Apply(ruleCtx(t, "a\nb\nc\nd\n", cfg))
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, 1, violations[0].Location.Line)
	})

	t.Run("byte limit disabled by default", func(t *testing.T) {
		violations, err := rule.Apply(ruleCtx(t, strings.Repeat("a", 100)+"\n", nil))
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("too many bytes", func(t *testing.T) {
		cfg := &config.RuleConfig{Options: map[string]any{"max_bytes": 10}}
		violations, err := rule.Apply(ruleCtx(t, strings.Repeat("a", 20)+"\n", cfg))
		require.NoError(t, err)
		assert.Len(t, violations, 1)
	})
}

func TestFencedLanguageRule(t *testing.T) {
	rule := NewFencedLanguageRule()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "language declared", content: "```go\nfunc main() {}\n```\n", want: 0},
		{name: "missing language", content: "```\nsome code\n```\n", want: 1},
		{name: "tilde fence missing language", content: "~~~\nsome code\n~~~\n", want: 1},
		{name: "two bare blocks", content: "```\na\n```\n\n```\nb\n```\n", want: 2},
		{name: "closing fence not flagged", content: "```go\ncode\n```\n", want: 0},
		{name: "no fences", content: "# Title\n\nProse only.\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := rule.Apply(ruleCtx(t, tt.content, nil))
			require.NoError(t, err)
			assert.Len(t, violations, tt.want)
		})
	}
}

func TestFencedLanguageRuleFix(t *testing.T) {
	rule := NewFencedLanguageRule()
	content := "```\n#!/bin/bash\necho hello\n```\n"

	violations, err := rule.Apply(ruleCtx(t, content, nil))
	require.NoError(t, err)
	require.Len(t, violations, 1)

	fixed := applyFixes(t, rule, violations, content)
	assert.Equal(t, "```bash\n#!/bin/bash\necho hello\n```\n", fixed)
}

func TestNewRegistryRegistersAllRules(t *testing.T) {
	registry := NewRegistry(nil)

	want := []string{"CL001", "CL002", "CL003", "CL004", "CL005", "CL006", "CL007", "CL008", "CL020"}
	assert.Equal(t, want, registry.IDs())
}

func TestGeneratorsMatchFixableRules(t *testing.T) {
	generators := Generators()

	registry := NewRegistry(nil)
	for _, rule := range registry.Rules() {
		_, ok := generators[rule.ID()]
		assert.Equal(t, rule.CanFix(), ok, "rule %s", rule.ID())
	}
}
