package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/ctxlint/internal/ui/pretty"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by
// file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No context files found."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Lint == nil || len(file.Lint.Violations) == 0 {
			continue
		}

		fmt.Fprintf(r.bw, "%s (%d issues)\n",
			r.styles.FilePath.Render(path),
			len(file.Lint.Violations),
		)

		for _, v := range file.Lint.Violations {
			var sourceLine string
			if r.opts.ShowContext && file.Lint.Doc != nil {
				sourceLine, _ = file.Lint.Doc.Line(v.Location.Line)
			}
			fmt.Fprint(r.bw, r.styles.FormatViolation(v, path, sourceLine))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, formatSummaryLine(r.styles, result.Stats))
	}

	return total, nil
}

// formatSummaryLine renders the one-line run summary.
func formatSummaryLine(styles *pretty.Styles, stats runner.Stats) string {
	line := fmt.Sprintf("%d files checked, %d issues", stats.FilesProcessed, stats.ViolationsTotal)
	if stats.ViolationsFixed > 0 {
		line += fmt.Sprintf(", %d fixed", stats.ViolationsFixed)
	}
	if stats.FilesErrored > 0 {
		line += fmt.Sprintf(", %d errors", stats.FilesErrored)
	}

	if stats.ViolationsTotal == 0 && stats.FilesErrored == 0 {
		return styles.Success.Render(line)
	}
	return styles.Failure.Render(line)
}
