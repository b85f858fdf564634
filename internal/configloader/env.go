package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/ctxlint/pkg/config"
)

// envVarPrefix is the prefix for all ctxlint environment variables.
const envVarPrefix = "CTXLINT_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with CTXLINT_, e.g.
// CTXLINT_SEVERITY_DEFAULT or CTXLINT_MAX_IMPORT_DEPTH.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := getenv("SEVERITY_DEFAULT"); v != "" {
		cfg.SeverityDefault = v
	}
	if v := getenv("FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := getenv("IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}
	if v := getenv("FILE_NAMES"); v != "" {
		cfg.FileNames = splitList(v)
	}

	if v := getenv("MAX_IMPORT_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sMAX_IMPORT_DEPTH: %q", envVarPrefix, v)
		}
		cfg.MaxImportDepth = n
	}
	if v := getenv("JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = n
	}

	for _, b := range []struct {
		suffix string
		target *bool
	}{
		{"FIX", &cfg.Fix},
		{"DRY_RUN", &cfg.DryRun},
		{"NO_BACKUPS", &cfg.NoBackups},
		{"BACKUPS_ENABLED", &cfg.Backups.Enabled},
	} {
		v := getenv(b.suffix)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s%s: %q (expected true/false/1/0)", envVarPrefix, b.suffix, v)
		}
		*b.target = parsed
	}

	return nil
}

func getenv(suffix string) string {
	return os.Getenv(envVarPrefix + suffix)
}

// splitList parses a comma-separated environment value.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
