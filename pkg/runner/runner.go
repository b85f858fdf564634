package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/fix"
	"github.com/yaklabco/ctxlint/pkg/fsutil"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// Runner orchestrates linting and fixing across many files.
type Runner struct {
	// Engine evaluates rules against each document.
	Engine *lint.Engine

	// Generators supplies per-rule fix generators when fixing.
	Generators map[string]fix.Generator
}

// New creates a Runner over the given engine and generators.
func New(engine *lint.Engine, generators map[string]fix.Generator) *Runner {
	return &Runner{Engine: engine, Generators: generators}
}

// Run discovers files under opts.Paths and processes them with a
// worker pool. Outcomes are returned in path order regardless of
// completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; key by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile lints one file and, when fixing is requested, applies
// available fixes and writes the result back atomically.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	doc := document.New(path, string(content))

	lintResult, err := r.Engine.LintDocument(ctx, doc, opts.Config)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Lint = lintResult

	if !opts.Fix || !lintResult.HasViolations() {
		return outcome
	}

	generators := r.fixableGenerators(opts)
	fixes := fix.Generate(generators, lintResult.Violations, doc.Content)
	if len(fixes) == 0 {
		return outcome
	}

	fixResult := fix.Apply(doc, fixes)
	outcome.Fix = &fixResult
	if !fixResult.Fixed {
		return outcome
	}

	// Re-lint the fixed content so the outcome reports what remains.
	fixedDoc := document.New(path, fixResult.Content)
	relint, err := r.Engine.LintDocument(ctx, fixedDoc, opts.Config)
	if err == nil {
		outcome.Lint = relint
	}

	if opts.DryRun {
		return outcome
	}

	// Refuse the write-back if something else touched the file while
	// we were computing fixes.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if modified {
		outcome.Error = fmt.Errorf("%s changed during fixing, not overwriting", path)
		return outcome
	}

	if opts.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Error = err
			return outcome
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(fixResult.Content), info.Mode); err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Written = true

	logger.Debug("fixed file",
		logging.FieldPath, path,
		logging.FieldApplied, len(fixResult.Applied),
	)
	return outcome
}

// fixableGenerators narrows the generator set to rules whose resolved
// configuration allows auto-fixing.
func (r *Runner) fixableGenerators(opts Options) map[string]fix.Generator {
	resolved := lint.ResolveRules(r.Engine.Registry, opts.Config)

	generators := make(map[string]fix.Generator, len(r.Generators))
	for _, rr := range resolved {
		if !rr.AutoFix {
			continue
		}
		if gen, ok := r.Generators[rr.Rule.ID()]; ok {
			generators[rr.Rule.ID()] = gen
		}
	}
	return generators
}
