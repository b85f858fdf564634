package lint

import "github.com/yaklabco/ctxlint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for violations from this rule.
	Severity Severity

	// AutoFix indicates whether auto-fix is enabled for this rule.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and
// config. It returns only enabled rules with their resolved settings.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		AutoFix:  rule.CanFix(),
		Config:   nil,
	}

	if cfg == nil {
		return rr
	}

	// Explicit enable/disable from the CLI.
	for _, key := range cfg.EnableRules {
		if matchesRule(rule, key) {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if matchesRule(rule, key) {
			rr.Enabled = false
			break
		}
	}

	// Rule-specific config, keyed by ID or name.
	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if sev, err := ParseSeverity(*ruleCfg.Severity); err == nil {
				rr.Severity = sev
			}
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix && rule.CanFix()
		}
	}

	// Fix-rules filter from the CLI.
	if len(cfg.FixRules) > 0 {
		rr.AutoFix = false
		for _, key := range cfg.FixRules {
			if matchesRule(rule, key) && rule.CanFix() {
				rr.AutoFix = true
				break
			}
		}
	}

	return rr
}

func matchesRule(rule Rule, key string) bool {
	return key == rule.ID() || key == rule.Name()
}
