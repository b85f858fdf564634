package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/rules"
)

// ruleInfo is the JSON shape for a single rule listing.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json")

	return cmd
}

func runRules(cmd *cobra.Command, format string) error {
	registry := rules.NewRegistry(nil)

	infos := make([]ruleInfo, 0, len(registry.Rules()))
	for _, rule := range registry.Rules() {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    rule.DefaultSeverity().String(),
			Enabled:     rule.DefaultEnabled(),
			Fixable:     rule.CanFix(),
		})
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(infos); err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}
	case "text":
		out := logging.NewInteractive()
		for _, info := range infos {
			out.Info(fmt.Sprintf("%s %s", info.ID, info.Name),
				logging.FieldSeverity, info.Severity,
				logging.FieldFixable, info.Fixable,
				logging.FieldDescription, info.Description,
			)
		}
	default:
		return fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	return nil
}
