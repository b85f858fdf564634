package imports

import (
	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// Rule exposes import resolution as a lint rule.
type Rule struct {
	lint.BaseRule
	loader document.Loader
}

// NewRule creates the import-resolution rule over the given loader.
// A nil loader selects the file-system loader.
func NewRule(loader document.Loader) *Rule {
	if loader == nil {
		loader = document.NewFileLoader()
	}
	return &Rule{
		BaseRule: lint.NewBaseRule(
			RuleID,
			"import-resolution",
			"Imports must resolve to existing files without cycles or excessive nesting",
			false,
		),
		loader: loader,
	}
}

// DefaultSeverity returns Error: unresolvable imports break the file's
// consumers, they are not style issues.
func (r *Rule) DefaultSeverity() lint.Severity {
	return lint.SeverityError
}

// Apply runs the resolver against the document.
// The depth limit comes from the rule's "max_depth" option, falling
// back to the config-wide MaxImportDepth.
func (r *Rule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	maxDepth := config.DefaultMaxImportDepth
	if ctx.Config != nil && ctx.Config.MaxImportDepth > 0 {
		maxDepth = ctx.Config.MaxImportDepth
	}
	maxDepth = ctx.OptionInt("max_depth", maxDepth)

	resolver := NewResolver(r.loader, maxDepth)
	return resolver.Resolve(ctx.Doc), nil
}
