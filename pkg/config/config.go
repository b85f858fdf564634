// Package config defines core configuration types for ctxlint.
// These types are pure data structures with no dependency on a
// particular loader.
package config

// DefaultMaxImportDepth bounds recursive @import traversal.
const DefaultMaxImportDepth = 5

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputFormat specifies the output format for violations.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for ctxlint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't
	// specify one ("info", "warning", "error").
	SeverityDefault string `yaml:"severity_default"`

	// MaxImportDepth caps @import chain length during resolution.
	MaxImportDepth int `yaml:"max_import_depth"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// FileNames are the context-file base names to discover in
	// directories (e.g., CLAUDE.md, AGENTS.md).
	FileNames []string `yaml:"file_names"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options, never persisted to config files.

	// Fix enables auto-fixing of violations.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without writing.
	DryRun bool `yaml:"-"`

	// Interactive prompts per fix instead of applying all at once.
	Interactive bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 = NumCPU).
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-"`
}

// DefaultFileNames are the context-file names discovered when the
// config does not override them.
func DefaultFileNames() []string {
	return []string{"CLAUDE.md", "AGENTS.md", "GEMINI.md"}
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		SeverityDefault: "warning",
		MaxImportDepth:  DefaultMaxImportDepth,
		Rules:           make(map[string]RuleConfig),
		FileNames:       DefaultFileNames(),
		Backups:         BackupsConfig{Enabled: true},
		Format:          FormatText,
	}
}
