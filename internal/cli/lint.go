package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/ctxlint/internal/configloader"
	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/lint"
	"github.com/yaklabco/ctxlint/pkg/reporter"
	"github.com/yaklabco/ctxlint/pkg/rules"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

type lintFlags struct {
	format    string
	strict    bool
	ignore    []string
	enable    []string
	disable   []string
	jobs      int
	fileNames []string
	noContext bool
	noSummary bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint context files",
		Long: `Lint checks context files for structural problems and reports
violations. With no paths, the current directory is searched
recursively for context files (CLAUDE.md, AGENTS.md, GEMINI.md by
default).`,
		Example: `  ctxlint lint
  ctxlint lint CLAUDE.md docs/
  ctxlint lint --format json --strict
  ctxlint lint --disable line-length .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, summary")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero on warnings too")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to exclude")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = all CPUs)")
	cmd.Flags().StringSliceVar(&flags.fileNames, "file-name", nil, "context file names to discover")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "omit source lines from text output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary footer")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	ctx := cmd.Context()
	logger := logging.Default()

	cliCfg := &config.Config{
		Jobs:         flags.jobs,
		EnableRules:  flags.enable,
		DisableRules: flags.disable,
		Ignore:       flags.ignore,
		FileNames:    flags.fileNames,
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

	run := runner.New(lint.NewEngine(registry), rules.Generators())
	result, err := run.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workingDir,
		FileNames:    cfg.FileNames,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
		ShowSummary: !flags.noSummary,
		WorkingDir:  workingDir,
	})
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &ExitError{Code: code}
	}
	return nil
}

// loadConfig runs the full configuration cascade, logging any
// non-fatal warnings it produced.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config, registry *lint.Registry, logger *log.Logger) (*config.Config, error) {
	explicitPath, _ := cmd.Flags().GetString("config")

	loaded, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		ExplicitPath: explicitPath,
		CLIConfig:    cliCfg,
		Registry:     registry,
	})
	if err != nil {
		return nil, &ExitError{
			Code: ExitConfigError,
			Err:  fmt.Errorf("load configuration: %w", err),
		}
	}
	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	return loaded.Config, nil
}

// resolveFormat prefers the explicit flag, then config, then text.
func resolveFormat(cfg *config.Config, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Format != "" {
		return string(cfg.Format)
	}
	return string(config.FormatText)
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" {
		return "auto"
	}
	return mode
}
