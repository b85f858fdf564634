package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/githook"
)

func newHooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage the git pre-commit hook",
		Long: `Hooks installs a pre-commit hook that lints staged context files
before every commit. Only hooks written by ctxlint are ever touched;
an existing hand-written hook is left alone unless --force is given.`,
	}

	cmd.AddCommand(newHooksInstallCommand())
	cmd.AddCommand(newHooksUninstallCommand())
	cmd.AddCommand(newHooksStatusCommand())

	return cmd
}

func newHooksInstallCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the pre-commit hook",
		RunE: func(_ *cobra.Command, _ []string) error {
			out := logging.NewInteractive()

			repoDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}

			path, err := githook.Install(repoDir, force)
			if err != nil {
				if errors.Is(err, githook.ErrHookExists) {
					return fmt.Errorf("%w (use --force to replace it)", err)
				}
				return err
			}

			out.Info("installed pre-commit hook", logging.FieldPath, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing hook")

	return cmd
}

func newHooksUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the pre-commit hook",
		RunE: func(_ *cobra.Command, _ []string) error {
			out := logging.NewInteractive()

			repoDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}

			if err := githook.Uninstall(repoDir); err != nil {
				return err
			}

			out.Info("removed pre-commit hook")
			return nil
		},
	}
}

func newHooksStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the pre-commit hook is installed",
		RunE: func(_ *cobra.Command, _ []string) error {
			out := logging.NewInteractive()

			repoDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}

			if githook.IsInstalled(repoDir) {
				path, pathErr := githook.HookPath(repoDir)
				if pathErr != nil {
					return pathErr
				}
				out.Info("pre-commit hook installed", logging.FieldPath, path)
			} else {
				out.Info("no pre-commit hook installed")
			}
			return nil
		},
	}
}
