// Package githook installs and removes the ctxlint git pre-commit
// hook.
package githook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookMarker identifies hooks written by ctxlint, so Uninstall never
// deletes a hand-written hook.
const hookMarker = "# installed by ctxlint"

// hookScript is the pre-commit hook body. It lints staged context
// files and blocks the commit on error-severity findings.
const hookScript = `#!/bin/sh
` + hookMarker + `
# Lints staged context files before committing.

files=$(git diff --cached --name-only --diff-filter=ACM | grep -E '(CLAUDE|AGENTS|GEMINI)\.md$')
if [ -z "$files" ]; then
	exit 0
fi

exec ctxlint lint $files
`

// ErrHookExists is returned when a foreign pre-commit hook is already
// installed.
var ErrHookExists = errors.New("a pre-commit hook not managed by ctxlint already exists")

// ErrNotInstalled is returned by Uninstall when no ctxlint hook is
// present.
var ErrNotInstalled = errors.New("no ctxlint pre-commit hook installed")

// HookPath returns the pre-commit hook path for the repository rooted
// at repoDir, or an error if repoDir is not a git repository.
func HookPath(repoDir string) (string, error) {
	gitDir := filepath.Join(repoDir, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		return "", fmt.Errorf("%s is not a git repository", repoDir)
	}

	// Worktrees keep a pointer file instead of a directory.
	if !info.IsDir() {
		content, err := os.ReadFile(gitDir)
		if err != nil {
			return "", fmt.Errorf("read git pointer: %w", err)
		}
		line := strings.TrimSpace(string(content))
		target, ok := strings.CutPrefix(line, "gitdir: ")
		if !ok {
			return "", fmt.Errorf("unrecognized git pointer in %s", gitDir)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(repoDir, target)
		}
		gitDir = target
	}

	return filepath.Join(gitDir, "hooks", "pre-commit"), nil
}

// IsInstalled reports whether the ctxlint hook is installed in the
// repository rooted at repoDir.
func IsInstalled(repoDir string) bool {
	path, err := HookPath(repoDir)
	if err != nil {
		return false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), hookMarker)
}

// Install writes the pre-commit hook. A hook previously written by
// ctxlint is replaced; any other existing hook is an error unless
// force is set.
func Install(repoDir string, force bool) (string, error) {
	path, err := HookPath(repoDir)
	if err != nil {
		return "", err
	}

	if existing, readErr := os.ReadFile(path); readErr == nil {
		if !strings.Contains(string(existing), hookMarker) && !force {
			return "", fmt.Errorf("%w: %s", ErrHookExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
		return "", fmt.Errorf("write hook: %w", err)
	}
	return path, nil
}

// Uninstall removes a ctxlint-managed pre-commit hook. It refuses to
// touch hooks it did not write.
func Uninstall(repoDir string) error {
	path, err := HookPath(repoDir)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInstalled
		}
		return fmt.Errorf("read hook: %w", err)
	}
	if !strings.Contains(string(content), hookMarker) {
		return ErrNotInstalled
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove hook: %w", err)
	}
	return nil
}
