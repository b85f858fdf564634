package githook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "hooks"), 0o755))
	return dir
}

func TestHookPath(t *testing.T) {
	t.Run("regular repository", func(t *testing.T) {
		dir := gitRepo(t)
		path, err := HookPath(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".git", "hooks", "pre-commit"), path)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := HookPath(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("worktree pointer", func(t *testing.T) {
		dir := t.TempDir()
		gitDir := filepath.Join(dir, "real-git")
		require.NoError(t, os.MkdirAll(gitDir, 0o755))

		worktree := filepath.Join(dir, "wt")
		require.NoError(t, os.MkdirAll(worktree, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(worktree, ".git"),
			[]byte("gitdir: "+gitDir+"\n"),
			0o644,
		))

		path, err := HookPath(worktree)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(gitDir, "hooks", "pre-commit"), path)
	})
}

func TestInstall(t *testing.T) {
	t.Run("installs hook", func(t *testing.T) {
		dir := gitRepo(t)

		path, err := Install(dir, false)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0o100, "hook should be executable")
		assert.True(t, IsInstalled(dir))
	})

	t.Run("reinstall over own hook", func(t *testing.T) {
		dir := gitRepo(t)

		_, err := Install(dir, false)
		require.NoError(t, err)
		_, err = Install(dir, false)
		assert.NoError(t, err)
	})

	t.Run("refuses foreign hook", func(t *testing.T) {
		dir := gitRepo(t)
		hookPath := filepath.Join(dir, ".git", "hooks", "pre-commit")
		require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\nmake test\n"), 0o755))

		_, err := Install(dir, false)
		assert.ErrorIs(t, err, ErrHookExists)

		_, err = Install(dir, true)
		assert.NoError(t, err)
	})
}

func TestUninstall(t *testing.T) {
	t.Run("removes own hook", func(t *testing.T) {
		dir := gitRepo(t)
		_, err := Install(dir, false)
		require.NoError(t, err)

		require.NoError(t, Uninstall(dir))
		assert.False(t, IsInstalled(dir))
	})

	t.Run("nothing installed", func(t *testing.T) {
		dir := gitRepo(t)
		assert.ErrorIs(t, Uninstall(dir), ErrNotInstalled)
	})

	t.Run("refuses foreign hook", func(t *testing.T) {
		dir := gitRepo(t)
		hookPath := filepath.Join(dir, ".git", "hooks", "pre-commit")
		require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\nmake test\n"), 0o755))

		assert.ErrorIs(t, Uninstall(dir), ErrNotInstalled)

		// The foreign hook survives.
		_, err := os.Stat(hookPath)
		assert.NoError(t, err)
	})
}
