package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/ctxlint/internal/ui/pretty"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

// Layout constants for the summary tables.
const (
	ruleColWidth = 24
	fileColWidth = 48
	numColWidth  = 7
)

// SummaryReporter formats results as aggregated per-rule and per-file
// tables instead of individual violations.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

type summaryRow struct {
	key   string
	count int
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || !result.HasIssues() {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No issues found"))
		return 0, nil
	}

	byRule := make(map[string]int)
	byFile := make(map[string]int)
	for _, file := range result.Files {
		if file.Lint == nil {
			continue
		}
		path := displayPath(file.Path, r.opts.WorkingDir)
		for _, v := range file.Lint.Violations {
			byRule[v.RuleID]++
			byFile[path]++
		}
	}

	r.renderTable("Rule", ruleColWidth, sortedRows(byRule))
	fmt.Fprintln(r.bw)
	r.renderTable("File", fileColWidth, sortedRows(byFile))
	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, formatSummaryLine(r.styles, result.Stats))

	return result.Stats.ViolationsTotal, nil
}

// sortedRows orders rows by count descending, then key for stability.
func sortedRows(counts map[string]int) []summaryRow {
	rows := make([]summaryRow, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, summaryRow{key: key, count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].key < rows[j].key
	})
	return rows
}

func (r *SummaryReporter) renderTable(header string, keyWidth int, rows []summaryRow) {
	fmt.Fprintf(r.bw, "%s %s\n",
		r.styles.SummaryTitle.Render(padRight(header, keyWidth)),
		r.styles.SummaryTitle.Render(padLeft("Issues", numColWidth)),
	)
	fmt.Fprintln(r.bw, strings.Repeat("-", keyWidth+1+numColWidth))

	for _, row := range rows {
		key := row.key
		if len(key) > keyWidth {
			key = key[:keyWidth-3] + "..."
		}
		fmt.Fprintf(r.bw, "%s %s\n",
			padRight(key, keyWidth),
			padLeft(fmt.Sprintf("%d", row.count), numColWidth),
		)
	}
}

// padRight pads with spaces on the right. Call before styling so ANSI
// codes do not skew the width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads with spaces on the left.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
