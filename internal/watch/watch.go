// Package watch re-lints context files as they change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

// DefaultDebounce coalesces editor write bursts into one re-lint.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs the linter whenever a watched context file changes.
type Watcher struct {
	// Runner performs each lint pass.
	Runner *runner.Runner

	// Options are the runner options for every pass. Fix is never
	// honored while watching; rewriting files from the watcher would
	// retrigger it.
	Options runner.Options

	// Debounce is the quiet period before a pass runs. Zero means
	// DefaultDebounce.
	Debounce time.Duration

	// OnResult is called after every pass with the fresh result.
	OnResult func(*runner.Result)
}

// Run watches the option paths until the context is cancelled. One
// pass always runs up front so the caller sees the current state.
func (w *Watcher) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	opts := w.Options
	opts.Fix = false
	opts.DryRun = false

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	dirs, err := w.watchRoots(ctx, opts)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			logger.Warn("cannot watch directory",
				logging.FieldPath, dir,
				logging.FieldError, err,
			)
		}
	}

	if err := w.pass(ctx, opts); err != nil {
		return err
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event, opts) {
				continue
			}
			logger.Debug("change detected", logging.FieldPath, event.Name)
			// Restart the quiet period on every relevant event.
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-timerC:
			timerC = nil
			timer = nil
			if err := w.pass(ctx, opts); err != nil {
				return err
			}

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, watchErr)
		}
	}
}

// pass runs one lint pass and delivers the result.
func (w *Watcher) pass(ctx context.Context, opts runner.Options) error {
	result, err := w.Runner.Run(ctx, opts)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.FromContext(ctx).Warn("lint pass failed", logging.FieldError, err)
		return nil
	}
	if w.OnResult != nil {
		w.OnResult(result)
	}
	return nil
}

// watchRoots collects the directories to watch: every directory that
// holds a discovered file, plus the subtrees of directory paths.
func (w *Watcher) watchRoots(ctx context.Context, opts runner.Options) ([]string, error) {
	files, err := runner.Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var dirs []string
	add := func(dir string) {
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	for _, file := range files {
		add(filepath.Dir(file))
	}

	// Watch directory subtrees too, so files created after startup
	// are picked up.
	workDir := opts.WorkingDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, p)
		}
		if info, statErr := os.Stat(p); statErr == nil && info.IsDir() {
			add(p)
		}
	}

	return dirs, nil
}

// relevant reports whether the event concerns a context file we lint.
func relevant(event fsnotify.Event, opts runner.Options) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	name := filepath.Base(event.Name)
	names := opts.FileNames
	if len(names) == 0 && opts.Config != nil {
		names = opts.Config.FileNames
	}
	if len(names) == 0 {
		names = config.DefaultFileNames()
	}
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
