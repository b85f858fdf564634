package runner

import (
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// FileOutcome holds everything the run produced for one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Lint contains the lint result. After a fix pass it reflects
	// the fixed content, so it reports only the remaining issues.
	Lint *lint.Result

	// Fix contains the fix application result when fixing was
	// requested and fixes were available. Nil otherwise.
	Fix *fix.Result

	// Written reports whether the file was rewritten on disk.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during
	// discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one
	// violation remaining.
	FilesWithIssues int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// ViolationsTotal is the total number of violations across all
	// files.
	ViolationsTotal int

	// ViolationsFixed is the number of fixes applied across all
	// files.
	ViolationsFixed int

	// ViolationsBySeverity maps severity names to counts.
	ViolationsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by
	// path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any error-severity violations remain.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsBySeverity[lint.SeverityError.String()] > 0
}

// HasIssues reports whether any violations remain.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

func newStats() Stats {
	return Stats{
		ViolationsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Written {
		r.Stats.FilesModified++
	}
	if outcome.Fix != nil {
		r.Stats.ViolationsFixed += len(outcome.Fix.Applied)
	}

	if outcome.Lint == nil {
		return
	}

	count := len(outcome.Lint.Violations)
	r.Stats.ViolationsTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}
	for _, v := range outcome.Lint.Violations {
		r.Stats.ViolationsBySeverity[v.Severity.String()]++
	}
}
