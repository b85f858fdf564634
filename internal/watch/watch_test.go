package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ctxlint/pkg/config"
	"github.com/yaklabco/ctxlint/pkg/lint"
	"github.com/yaklabco/ctxlint/pkg/rules"
	"github.com/yaklabco/ctxlint/pkg/runner"
)

// resultCollector gathers watch results safely across goroutines.
type resultCollector struct {
	mu      sync.Mutex
	results []*runner.Result
	notify  chan struct{}
}

func newResultCollector() *resultCollector {
	return &resultCollector{notify: make(chan struct{}, 16)}
}

func (c *resultCollector) add(r *runner.Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

func (c *resultCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func (c *resultCollector) last() *runner.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.results) == 0 {
		return nil
	}
	return c.results[len(c.results)-1]
}

func (c *resultCollector) waitFor(t *testing.T, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for c.count() < n {
		select {
		case <-c.notify:
		case <-deadline:
			t.Fatalf("timed out waiting for %d results, have %d", n, c.count())
		}
	}
}

func newWatcher(dir string, collector *resultCollector) *Watcher {
	registry := rules.NewRegistry(nil)
	return &Watcher{
		Runner:   runner.New(lint.NewEngine(registry), rules.Generators()),
		Options:  runner.Options{WorkingDir: dir, Config: config.New()},
		Debounce: 20 * time.Millisecond,
		OnResult: collector.add,
	}
}

func TestWatcherInitialPass(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLAUDE.md"), []byte("# Title\n"), 0o644))

	collector := newResultCollector()
	w := newWatcher(dir, collector)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	collector.waitFor(t, 1, 5*time.Second)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	result := collector.last()
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Stats.FilesDiscovered)
}

func TestWatcherReactsToWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CLAUDE.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o644))

	collector := newResultCollector()
	w := newWatcher(dir, collector)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	collector.waitFor(t, 1, 5*time.Second)

	// Introduce an issue and wait for the debounced pass.
	require.NoError(t, os.WriteFile(path, []byte("no title  \n"), 0o644))
	collector.waitFor(t, 2, 5*time.Second)

	cancel()
	<-done

	assert.True(t, collector.last().HasIssues())
}

func TestRelevant(t *testing.T) {
	opts := runner.Options{Config: config.New()}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"context file write", fsnotify.Event{Name: "/x/CLAUDE.md", Op: fsnotify.Write}, true},
		{"context file create", fsnotify.Event{Name: "/x/AGENTS.md", Op: fsnotify.Create}, true},
		{"other markdown", fsnotify.Event{Name: "/x/README.md", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "/x/CLAUDE.md", Op: fsnotify.Chmod}, false},
		{"case-insensitive name", fsnotify.Event{Name: "/x/claude.md", Op: fsnotify.Write}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event, opts))
		})
	}
}
