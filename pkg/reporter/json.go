package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/ctxlint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Violations []JSONViolation `json:"violations"`
	Fixed      int             `json:"fixed,omitempty"`
	Modified   bool            `json:"modified,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation represents a single violation.
type JSONViolation struct {
	RuleID   string `json:"ruleId"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	IssuesFixed     int            `json:"issuesFixed,omitempty"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// jsonSchemaVersion identifies the JSON output shape.
const jsonSchemaVersion = "1"

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   []JSONFileResult{},
		Summary: JSONSummary{BySeverity: map[string]int{}},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fr := JSONFileResult{
			Path:       displayPath(file.Path, r.opts.WorkingDir),
			Violations: []JSONViolation{},
			Modified:   file.Written,
		}
		if file.Error != nil {
			fr.Error = file.Error.Error()
		}
		if file.Fix != nil {
			fr.Fixed = len(file.Fix.Applied)
		}
		if file.Lint != nil {
			for _, v := range file.Lint.Violations {
				fr.Violations = append(fr.Violations, JSONViolation{
					RuleID:   v.RuleID,
					Severity: v.Severity.String(),
					Message:  v.Message,
					Line:     v.Location.Line,
					Column:   v.Location.Column,
				})
			}
		}
		output.Files = append(output.Files, fr)
	}

	output.Summary.FilesChecked = result.Stats.FilesProcessed
	output.Summary.FilesWithIssues = result.Stats.FilesWithIssues
	output.Summary.FilesModified = result.Stats.FilesModified
	output.Summary.FilesErrored = result.Stats.FilesErrored
	output.Summary.TotalIssues = result.Stats.ViolationsTotal
	output.Summary.IssuesFixed = result.Stats.ViolationsFixed
	for sev, count := range result.Stats.ViolationsBySeverity {
		output.Summary.BySeverity[sev] = count
	}

	return output
}
