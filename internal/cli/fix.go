package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/internal/ui/pretty"
	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/fsutil"
	"github.com/yaklabco/ctxlint/pkg/lint"
	"github.com/yaklabco/ctxlint/pkg/rules"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

type fixFlags struct {
	dryRun      bool
	interactive bool
	fixRules    []string
	noBackups   bool
	ignore      []string
	jobs        int
	fileNames   []string
}

func newFixCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Automatically fix violations in context files",
		Long: `Fix lints context files and rewrites them with automatic fixes
applied. Files are re-linted after fixing so only remaining issues are
reported. Writes are atomic, guarded against concurrent modification,
and preceded by a backup unless backups are disabled.`,
		Example: `  ctxlint fix
  ctxlint fix --dry-run CLAUDE.md
  ctxlint fix --interactive
  ctxlint fix --fix-rules no-trailing-spaces,final-newline .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show fixes without writing files")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt before each fix")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "only fix these rule IDs or names")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "skip backup files before writing")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to exclude")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = all CPUs)")
	cmd.Flags().StringSliceVar(&flags.fileNames, "file-name", nil, "context file names to discover")

	return cmd
}

func runFix(cmd *cobra.Command, args []string, flags *fixFlags) error {
	logger := logging.Default()

	cliCfg := &config.Config{
		Fix:         true,
		DryRun:      flags.dryRun,
		Interactive: flags.interactive,
		FixRules:    flags.fixRules,
		NoBackups:   flags.noBackups,
		Ignore:      flags.ignore,
		Jobs:        flags.jobs,
		FileNames:   flags.fileNames,
	}

	registry := rules.NewRegistry(nil)
	cfg, err := loadConfig(cmd, cliCfg, registry, logger)
	if err != nil {
		return err
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	opts := runner.Options{
		Paths:        args,
		WorkingDir:   workingDir,
		FileNames:    cfg.FileNames,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Fix:          true,
		DryRun:       flags.dryRun,
		Backup:       cfg.Backups.Enabled && !flags.noBackups,
		Config:       cfg,
	}

	if flags.interactive {
		// Prompting needs a terminal on the other end. A redirected
		// stdin set through cobra (tests, scripting) is still allowed.
		if f, ok := cmd.InOrStdin().(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractiveFix(cmd, opts, registry)
	}
	return runBatchFix(cmd, opts, registry, flags.dryRun)
}

func runBatchFix(cmd *cobra.Command, opts runner.Options, registry *lint.Registry, dryRun bool) error {
	ctx := cmd.Context()
	out := logging.NewInteractive()

	run := runner.New(lint.NewEngine(registry), rules.Generators())
	result, err := run.Run(ctx, opts)
	if err != nil {
		return err
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			out.Error("could not process file",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
			continue
		}
		if outcome.Fix == nil || !outcome.Fix.Fixed {
			continue
		}

		if dryRun {
			original, readErr := os.ReadFile(outcome.Path)
			if readErr != nil {
				out.Error("could not re-read file for diff",
					logging.FieldPath, outcome.Path,
					logging.FieldError, readErr,
				)
				continue
			}
			diff := fix.NewDiff(outcome.Path, string(original), outcome.Fix.Content)
			fmt.Fprint(cmd.OutOrStdout(), diff.String())
			continue
		}

		out.Info("fixed",
			logging.FieldPath, outcome.Path,
			logging.FieldApplied, len(outcome.Fix.Applied),
		)
	}

	if dryRun {
		out.Info("dry run, no files were modified",
			logging.FieldFiles, result.Stats.FilesWithIssues,
		)
	} else {
		out.Info("fix complete",
			logging.FieldFilesModified, result.Stats.FilesModified,
			logging.FieldApplied, result.Stats.ViolationsFixed,
		)
	}

	if result.Stats.FilesErrored > 0 {
		return &ExitError{Code: ExitIOError}
	}
	return nil
}

// runInteractiveFix walks each discovered file's fixes one at a time,
// prompting on stdin. Interactive sessions run single-threaded; the
// worker pool is bypassed.
func runInteractiveFix(cmd *cobra.Command, opts runner.Options, registry *lint.Registry) error {
	ctx := cmd.Context()
	out := logging.NewInteractive()

	paths, err := runner.Discover(ctx, opts)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		out.Info("no context files found")
		return nil
	}

	engine := lint.NewEngine(registry)
	generators := autoFixGenerators(registry, opts.Config)

	reader := bufio.NewReader(cmd.InOrStdin())
	prompt := func(question string) (string, error) {
		fmt.Fprint(cmd.OutOrStdout(), question)
		line, readErr := reader.ReadString('\n')
		if readErr != nil {
			return "", readErr
		}
		return strings.TrimSpace(line), nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), os.Stdout))
	driver := fix.NewDriver(prompt, cmd.OutOrStdout(), styles)

	totalApplied := 0
	filesModified := 0

	for _, path := range paths {
		content, info, readErr := fsutil.ReadFile(ctx, path)
		if readErr != nil {
			out.Error("could not read file",
				logging.FieldPath, path,
				logging.FieldError, readErr,
			)
			continue
		}

		doc := document.New(path, string(content))
		lintResult, lintErr := engine.LintDocument(ctx, doc, opts.Config)
		if lintErr != nil {
			out.Error("could not lint file",
				logging.FieldPath, path,
				logging.FieldError, lintErr,
			)
			continue
		}

		session, runErr := driver.Run(doc, lintResult.Violations, generators)
		if runErr != nil {
			return runErr
		}
		totalApplied += session.Applied

		if session.Fixed && !opts.DryRun {
			if writeErr := writeFixed(ctx, path, info, session.Content, opts.Backup); writeErr != nil {
				out.Error("could not write file",
					logging.FieldPath, path,
					logging.FieldError, writeErr,
				)
				continue
			}
			filesModified++
		}

		if session.QuitEarly {
			break
		}
	}

	out.Info("interactive fix complete",
		logging.FieldFilesModified, filesModified,
		logging.FieldApplied, totalApplied,
	)
	return nil
}

// autoFixGenerators narrows the full generator set to the rules whose
// resolved configuration permits auto-fixing.
func autoFixGenerators(registry *lint.Registry, cfg *config.Config) map[string]fix.Generator {
	all := rules.Generators()
	resolved := lint.ResolveRules(registry, cfg)

	generators := make(map[string]fix.Generator, len(all))
	for _, rr := range resolved {
		if !rr.AutoFix {
			continue
		}
		if gen, ok := all[rr.Rule.ID()]; ok {
			generators[rr.Rule.ID()] = gen
		}
	}
	return generators
}

// writeFixed guards against concurrent modification, takes an optional
// backup, and rewrites the file atomically with its original mode.
func writeFixed(ctx context.Context, path string, info *fsutil.FileInfo, content string, backup bool) error {
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return err
	}
	if modified {
		return fmt.Errorf("%s changed during fixing, not overwriting", path)
	}

	if backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	return fsutil.WriteAtomic(ctx, path, []byte(content), info.Mode)
}
