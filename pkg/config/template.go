package config

// StarterTemplate is the commented configuration written by `ctxlint init`.
const StarterTemplate = `# ctxlint configuration
# See 'ctxlint rules' for the full rule list.

# Default severity for rules that do not set their own: info, warning, error.
severity_default: warning

# Maximum @import chain length before a depth-exceeded error is reported.
max_import_depth: 5

# Context-file names discovered when linting directories.
file_names:
  - CLAUDE.md
  - AGENTS.md
  - GEMINI.md

# Glob patterns to skip during discovery.
ignore:
  - "**/node_modules/**"
  - "**/vendor/**"

# Per-rule settings, keyed by rule ID or name.
rules:
  line-length:
    options:
      max: 120
  file-size:
    severity: warning
    options:
      max_lines: 500

# Backups of files modified by 'ctxlint fix'.
backups:
  enabled: true
`
