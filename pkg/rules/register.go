package rules

import (
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/imports"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// NewRegistry returns a registry populated with every built-in rule.
// The loader is used by the import resolution rule to read imported
// files; passing nil uses the filesystem.
func NewRegistry(loader document.Loader) *lint.Registry {
	registry := lint.NewRegistry()
	for _, rule := range All(loader) {
		registry.Register(rule)
	}
	return registry
}

// All returns every built-in rule in ID order.
func All(loader document.Loader) []lint.Rule {
	return []lint.Rule{
		NewRequireTitleRule(),
		NewHeadingSpaceRule(),
		NewTrailingWhitespaceRule(),
		NewFinalNewlineRule(),
		NewHardTabsRule(),
		NewLineLengthRule(),
		NewFileSizeRule(),
		NewFencedLanguageRule(),
		imports.NewRule(loader),
	}
}

// Generators returns the fix generators for every fixable built-in
// rule, keyed by rule ID.
func Generators() map[string]fix.Generator {
	generators := make(map[string]fix.Generator)
	for _, rule := range All(nil) {
		if !rule.CanFix() {
			continue
		}
		if gen, ok := rule.(fix.Generator); ok {
			generators[rule.ID()] = gen
		}
	}
	return generators
}
