package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/internal/watch"
	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/lint"
	"github.com/yaklabco/ctxlint/pkg/reporter"
	"github.com/yaklabco/ctxlint/pkg/rules"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

type watchFlags struct {
	format    string
	ignore    []string
	fileNames []string
	debounce  time.Duration
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-lint context files as they change",
		Long: `Watch lints the given paths, then watches them for changes and
re-lints after each burst of filesystem events. Fixing is never
performed while watching.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, summary")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to exclude")
	cmd.Flags().StringSliceVar(&flags.fileNames, "file-name", nil, "context file names to discover")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", watch.DefaultDebounce,
		"quiet period before re-linting")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, flags *watchFlags) error {
	logger := logging.Default()

	cliCfg := &config.Config{
		Ignore:    flags.ignore,
		FileNames: flags.fileNames,
	}
	if flags.format != "" {
		cliCfg.Format = config.OutputFormat(flags.format)
	}

	registry := rules.NewRegistry(nil)
	cfg, err := loadConfig(cmd, cliCfg, registry, logger)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(resolveFormat(cfg, flags.format))
	if err != nil {
		return err
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  workingDir,
	})
	if err != nil {
		return err
	}

	watcher := &watch.Watcher{
		Runner: runner.New(lint.NewEngine(registry), rules.Generators()),
		Options: runner.Options{
			Paths:        args,
			WorkingDir:   workingDir,
			FileNames:    cfg.FileNames,
			ExcludeGlobs: cfg.Ignore,
			Config:       cfg,
		},
		Debounce: flags.debounce,
		OnResult: func(result *runner.Result) {
			if _, reportErr := rep.Report(cmd.Context(), result); reportErr != nil {
				logger.Error("write report", logging.FieldError, reportErr)
			}
		},
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", logging.FieldPaths, args)
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
