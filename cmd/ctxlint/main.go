// Package main is the entry point for the ctxlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/ctxlint/internal/cli"
	"github.com/yaklabco/ctxlint/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Lint findings exit with their code and no log noise;
		// everything else is a real failure worth logging.
		if !errors.Is(err, cli.ErrLintIssuesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
