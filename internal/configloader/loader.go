// Package configloader resolves ctxlint configuration. It implements
// XDG-compliant discovery, hierarchical merging, environment variable
// overrides, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	ExplicitPath string

	// IgnoreSystemConfig skips system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags. These take
	// highest precedence.
	CLIConfig *config.Config

	// Registry is used to normalize and validate rule keys. May be
	// nil, in which case unknown rule keys pass through silently.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence, highest to lowest:
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (CTXLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.ctxlint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/ctxlint/config.yaml)
//  6. System config (/etc/ctxlint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.New()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}
	result.Paths = paths

	load := func(path, kind string) error {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return fmt.Errorf("load %s config: %w", kind, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
		return nil
	}

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := load(paths.System, "system"); err != nil {
			return nil, err
		}
	}
	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := load(paths.User, "user"); err != nil {
			return nil, err
		}
	}
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := load(paths.Project, "project"); err != nil {
			return nil, err
		}
	}
	if paths.Explicit != "" {
		if err := load(paths.Explicit, "explicit"); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	normalizeRuleKeys(cfg, opts.Registry, result)

	validation := Validate(cfg, opts.Registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}
	return cfg, nil
}

// normalizeRuleKeys rewrites rule-name keys ("no-hard-tabs") to their
// canonical IDs ("CL005") so the rest of the system only sees IDs.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if cfg == nil || registry == nil || len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	for key, ruleCfg := range cfg.Rules {
		rule, ok := registry.Get(key)
		if !ok {
			// Left as-is; validation will warn about it.
			normalized[key] = ruleCfg
			continue
		}

		id := rule.ID()
		if existing, dup := normalized[id]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("rule %q configured under multiple keys; entries merged", id))
			normalized[id] = mergeRuleConfig(existing, ruleCfg)
			continue
		}
		normalized[id] = ruleCfg
	}
	cfg.Rules = normalized
}
