package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers.
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output: "auto", "always", "never".
	Color string

	// ShowContext includes the offending source line under each
	// violation in text output.
	ShowContext bool

	// ShowSummary appends aggregate statistics after results.
	ShowSummary bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are printed as discovered.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}
