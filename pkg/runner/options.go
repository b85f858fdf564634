// Package runner provides multi-file linting orchestration.
package runner

import "github.com/yaklabco/ctxlint/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// FileNames is the set of context file names to discover when
	// walking directories (e.g. CLAUDE.md). Explicitly listed file
	// paths are always processed regardless of name. Defaults to
	// config.DefaultFileNames().
	FileNames []string

	// ExcludeGlobs are glob patterns used to skip files or
	// directories. These merge ignore rules from config and CLI.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are
	// traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// Zero or negative means runtime.NumCPU().
	Jobs int

	// Fix applies available fixes to discovered files.
	Fix bool

	// DryRun computes fixes without writing them back.
	DryRun bool

	// Backup writes a .bak sidecar before overwriting a file.
	Backup bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveFileNames returns the context file names to discover,
// defaulting if empty.
func (o Options) effectiveFileNames() []string {
	if len(o.FileNames) == 0 {
		if o.Config != nil && len(o.Config.FileNames) > 0 {
			return o.Config.FileNames
		}
		return config.DefaultFileNames()
	}
	return o.FileNames
}

// effectivePaths returns the paths to process, defaulting to "." if
// empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
