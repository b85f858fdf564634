package cli

import (
	"fmt"

	"github.com/yaklabco/ctxlint/pkg/runner"
)

// Exit codes for ctxlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint found warnings in strict mode.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError carries a specific process exit code up to main. With a
// nil Err it signals lint findings, which main exits on silently; a
// non-nil Err is a real failure that still wants its own exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exiting with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) Is(target error) bool {
	return target == ErrLintIssuesFound && e.Err == nil
}

// ExitCodeFromResult determines the exit code from a run result.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}
	if result.Stats.ViolationsBySeverity["error"] > 0 {
		return ExitLintErrors
	}
	if strict && result.Stats.ViolationsBySeverity["warning"] > 0 {
		return ExitLintWarnings
	}
	return ExitSuccess
}
