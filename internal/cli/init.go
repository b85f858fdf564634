package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/config"
)

func newInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Init writes a commented .ctxlint.yml to the current directory so a
project can adjust rule severities, file names, and ignore patterns.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(output, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().StringVarP(&output, "output", "o", ".ctxlint.yml", "path to write the config to")

	return cmd
}

func runInit(path string, force bool) error {
	out := logging.NewInteractive()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(config.StarterTemplate), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	out.Info("wrote configuration", logging.FieldPath, path)
	return nil
}
