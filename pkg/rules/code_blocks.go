package rules

import (
	"strings"

	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/langdetect"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// FencedLanguageRule checks that opening code fences declare a
// language, so downstream renderers and agents can highlight or
// interpret the block.
type FencedLanguageRule struct {
	lint.BaseRule
}

// NewFencedLanguageRule creates a new fenced language rule.
func NewFencedLanguageRule() *FencedLanguageRule {
	return &FencedLanguageRule{
		BaseRule: lint.NewBaseRule(
			"CL008",
			"fenced-language",
			"Fenced code blocks should declare a language",
			true,
		),
	}
}

// fenceOpener returns the delimiter run of an opening fence line and
// whether an info string follows it.
func fenceOpener(line string) (delim string, hasInfo bool, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	var marker byte
	switch {
	case strings.HasPrefix(trimmed, "```"):
		marker = '`'
	case strings.HasPrefix(trimmed, "~~~"):
		marker = '~'
	default:
		return "", false, false
	}

	i := 0
	for i < len(trimmed) && trimmed[i] == marker {
		i++
	}
	rest := strings.TrimSpace(trimmed[i:])
	return trimmed[:i], rest != "", true
}

// Apply flags opening fences missing an info string.
func (r *FencedLanguageRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var violations []lint.Violation
	inFence := false

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		line, _ := ctx.Doc.Line(n)
		if !fenceDelimiter(line) {
			continue
		}
		if inFence {
			inFence = false
			continue
		}
		inFence = true

		delim, hasInfo, ok := fenceOpener(line)
		if !ok || hasInfo {
			continue
		}

		col := strings.Index(line, delim) + len(delim) + 1
		violations = append(violations, mustViolation(r.ID(),
			"Fenced code block is missing a language",
			document.Location{Line: n, Column: col},
		))
	}

	return violations, nil
}

// GenerateFixes inserts a detected language after the opening fence.
// Blocks whose content the classifier cannot place are left alone.
func (r *FencedLanguageRule) GenerateFixes(violations []lint.Violation, content string) []fix.Fix {
	doc := document.New("", content)
	var fixes []fix.Fix

	for _, v := range violations {
		block, ok := blockContent(doc, v.Location.Line)
		if !ok {
			continue
		}
		lang, confident := langdetect.Detect([]byte(block))
		if !confident {
			continue
		}

		at := v.Location
		span, err := document.NewSpan(at, at)
		if err != nil {
			continue
		}
		fixes = append(fixes, fix.Fix{
			Span:        span,
			Text:        lang,
			Description: "Add language to fenced code block",
		})
	}

	return fixes
}

// blockContent collects the lines between the fence opening at the
// given line and its closing delimiter.
func blockContent(doc *document.Document, openLine int) (string, bool) {
	opener, ok := doc.Line(openLine)
	if !ok || !fenceDelimiter(opener) {
		return "", false
	}

	var lines []string
	for n := openLine + 1; n <= doc.LineCount(); n++ {
		line, _ := doc.Line(n)
		if fenceDelimiter(line) {
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, line)
	}

	// Unclosed fence runs to end of file.
	return strings.Join(lines, "\n"), true
}
