package fix

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/internal/ui/pretty"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// Decision is an operator's answer to a fix prompt.
type Decision int

const (
	DecisionAccept Decision = iota
	DecisionSkip
	DecisionAcceptAll
	DecisionAbort
)

// ParseDecision normalizes operator input to a Decision,
// case-insensitively. It returns false for unrecognized input, which
// callers answer by re-prompting.
func ParseDecision(input string) (Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "a", "accept":
		return DecisionAccept, true
	case "n", "no", "s", "skip":
		return DecisionSkip, true
	case "all", "accept-all":
		return DecisionAcceptAll, true
	case "q", "quit", "abort":
		return DecisionAbort, true
	default:
		return 0, false
	}
}

// PromptFunc asks the operator a question and returns the raw answer.
// The driver blocks on this call; it is the session's only suspension
// point.
type PromptFunc func(question string) (string, error)

// InteractiveResult summarizes an interactive fix session.
type InteractiveResult struct {
	// Fixed is true iff at least one fix was applied.
	Fixed bool

	// Content is the document text after all accepted fixes.
	Content string

	// Applied counts accepted, successfully applied fixes.
	Applied int

	// Skipped counts fixes declined, unapplicable, or unprocessed at
	// abort time.
	Skipped int

	// QuitEarly is true if the operator aborted the session.
	QuitEarly bool
}

// previewContextLines is the number of unchanged lines shown on each
// side of a fix preview.
const previewContextLines = 2

// Driver steps through a fix set in document order, prompting for a
// decision per fix and applying accepted fixes immediately.
type Driver struct {
	// Prompt obtains one decision from the operator.
	Prompt PromptFunc

	// Out receives fix previews.
	Out io.Writer

	// Styles renders previews; nil disables styling.
	Styles *pretty.Styles
}

// NewDriver creates an interactive Driver.
func NewDriver(prompt PromptFunc, out io.Writer, styles *pretty.Styles) *Driver {
	if styles == nil {
		styles = pretty.NewStyles(false)
	}
	return &Driver{Prompt: prompt, Out: out, Styles: styles}
}

// Run generates fixes for the violations and walks them top-to-bottom,
// prompting per fix. Accepted fixes are applied one at a time through
// the batch engine against the current document, so every preview
// reflects the true state after the previous accepted fix. A fix that
// cannot be applied counts as skipped and never aborts the session.
func (d *Driver) Run(
	doc *document.Document,
	violations []lint.Violation,
	generators map[string]Generator,
) (InteractiveResult, error) {
	logger := logging.Default()

	fixes := Generate(generators, violations, doc.Content)
	if len(fixes) == 0 {
		return InteractiveResult{Fixed: false, Content: doc.Content}, nil
	}

	// Presented top-to-bottom, the order a reader scans the file in.
	SortAscending(fixes)

	current := doc
	result := InteractiveResult{}
	acceptAll := false

	for i, f := range fixes {
		decision := DecisionAccept
		if !acceptAll {
			d.preview(current, f, i+1, len(fixes))

			var err error
			decision, err = d.ask()
			if err != nil {
				return result, fmt.Errorf("read fix decision: %w", err)
			}
		}

		switch decision {
		case DecisionAbort:
			result.Skipped += len(fixes) - i
			result.QuitEarly = true
			result.Fixed = result.Applied > 0
			result.Content = current.Content
			return result, nil

		case DecisionSkip:
			result.Skipped++
			continue

		case DecisionAcceptAll:
			acceptAll = true
			fallthrough

		case DecisionAccept:
			applied := Apply(current, []Fix{f})
			if !applied.Fixed {
				logger.Warn("fix could not be applied",
					logging.FieldPath, doc.Path,
					logging.FieldSpan, f.Span.String(),
				)
				result.Skipped++
				continue
			}
			current = document.New(doc.Path, applied.Content)
			result.Applied++
		}
	}

	result.Fixed = result.Applied > 0
	result.Content = current.Content
	return result, nil
}

// ask prompts until the operator gives a recognized decision.
func (d *Driver) ask() (Decision, error) {
	for {
		answer, err := d.Prompt("Apply this fix? [y]es / [n]o / [all] / [q]uit: ")
		if err != nil {
			return 0, err
		}
		if decision, ok := ParseDecision(answer); ok {
			return decision, nil
		}
		fmt.Fprintln(d.Out, "Unrecognized answer; expected y, n, all, or q.")
	}
}

// preview renders the fix with surrounding context: the span to be
// removed and the replacement to be inserted.
func (d *Driver) preview(doc *document.Document, f Fix, index, total int) {
	s := d.Styles

	fmt.Fprintf(d.Out, "\n%s %s\n",
		s.Bold.Render(fmt.Sprintf("Fix %d/%d:", index, total)),
		f.Description,
	)
	fmt.Fprintf(d.Out, "%s %s\n",
		s.FilePath.Render(doc.Path),
		s.Location.Render(f.Span.String()),
	)

	first := f.Span.Start.Line - previewContextLines
	if first < 1 {
		first = 1
	}
	last := f.Span.End.Line + previewContextLines
	if last > doc.LineCount() {
		last = doc.LineCount()
	}

	for n := first; n <= last; n++ {
		line, ok := doc.Line(n)
		if !ok {
			continue
		}
		if n >= f.Span.Start.Line && n <= f.Span.End.Line {
			fmt.Fprintf(d.Out, "%s\n", s.DiffRemove.Render("- "+line))
		} else {
			fmt.Fprintf(d.Out, "%s\n", s.DiffContext.Render("  "+line))
		}
	}

	for _, line := range strings.Split(d.replacementPreview(doc, f), "\n") {
		fmt.Fprintf(d.Out, "%s\n", s.DiffAdd.Render("+ "+line))
	}
}

// replacementPreview reconstructs the full line(s) the fix would leave
// behind, so the inserted side of the preview is readable in context.
func (d *Driver) replacementPreview(doc *document.Document, f Fix) string {
	startLine, ok := doc.Line(f.Span.Start.Line)
	if !ok {
		return f.Text
	}
	endLine, ok := doc.Line(f.Span.End.Line)
	if !ok {
		return f.Text
	}

	startCol := f.Span.Start.Column - 1
	endCol := f.Span.End.Column - 1
	if startCol < 0 || startCol > len(startLine) || endCol < 0 || endCol > len(endLine) {
		return f.Text
	}

	return startLine[:startCol] + f.Text + endLine[endCol:]
}
