package imports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/ctxlint/internal/logging"
	"github.com/yaklabco/ctxlint/pkg/document"
	"github.com/yaklabco/ctxlint/pkg/lint"
)

// RuleID identifies violations produced by import resolution.
const RuleID = "CL020"

// DefaultMaxDepth caps import chain length when no limit is configured.
const DefaultMaxDepth = 5

// chainSeparator joins paths when reporting cycles and depth overruns.
const chainSeparator = " -> "

// Resolver traverses the import graph rooted at a document.
type Resolver struct {
	// Loader loads nested documents and answers existence checks.
	Loader document.Loader

	// MaxDepth is the maximum import chain length.
	MaxDepth int

	// homeDir resolves "~/" imports; defaults to the user's home.
	homeDir string
}

// NewResolver creates a Resolver over the given loader.
// maxDepth <= 0 selects DefaultMaxDepth.
func NewResolver(loader document.Loader, maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Resolver{
		Loader:   loader,
		MaxDepth: maxDepth,
		homeDir:  home,
	}
}

// Resolve extracts the root document's directives and walks the import
// graph, returning a violation for every missing target, cycle, and
// depth overrun. Structural problems are reported, never returned as
// errors; a nested file that exists but cannot be loaded is a dead end.
func (r *Resolver) Resolve(root *document.Document) []lint.Violation {
	rootPath, err := filepath.Abs(root.Path)
	if err != nil {
		rootPath = filepath.Clean(root.Path)
	}
	chain := []string{rootPath}
	seen := map[string]bool{rootPath: true}

	return r.walk(root, rootPath, 0, chain, seen)
}

// walk processes one document at the given depth. chain and seen are
// two views of the current resolution path: the ordered chain for
// reporting, the set for O(1) cycle checks. Entries are pushed before
// recursing and popped after, so only re-entry into the current chain
// counts as a cycle; reaching the same file via two non-cyclic paths is
// legitimate.
func (r *Resolver) walk(
	doc *document.Document,
	docPath string,
	depth int,
	chain []string,
	seen map[string]bool,
) []lint.Violation {
	logger := logging.Default()
	var violations []lint.Violation

	for _, dir := range Extract(doc) {
		resolved := r.resolvePath(dir.Path, filepath.Dir(docPath))

		switch {
		case !r.Loader.Exists(resolved):
			violations = append(violations, r.violation(dir,
				fmt.Sprintf("Import '@%s' does not exist (resolved to %s)", dir.Path, resolved)))

		case seen[resolved]:
			cycle := strings.Join(append(append([]string{}, chain...), resolved), chainSeparator)
			violations = append(violations, r.violation(dir,
				fmt.Sprintf("Import cycle detected: %s", cycle)))

		case depth+1 > r.MaxDepth:
			overrun := strings.Join(append(append([]string{}, chain...), resolved), chainSeparator)
			violations = append(violations, r.violation(dir,
				fmt.Sprintf("Import chain exceeds maximum depth %d: %s", r.MaxDepth, overrun)))

		default:
			nested, err := r.Loader.Load(resolved)
			if err != nil {
				// The directive graph is what we validate, not general
				// file health. An unreadable target ends this edge.
				logger.Debug("import target not loadable",
					logging.FieldImport, dir.Path,
					logging.FieldPath, resolved,
					logging.FieldError, err,
				)
				continue
			}

			seen[resolved] = true
			violations = append(violations,
				r.walk(nested, resolved, depth+1, append(chain, resolved), seen)...)
			delete(seen, resolved)
		}
	}

	return violations
}

// resolvePath maps an import path as written to an absolute path.
// Three dialects: home-relative ("~/"), absolute, and relative to the
// directory of the document containing the directive (not the root).
func (r *Resolver) resolvePath(importPath, fromDir string) string {
	switch {
	case strings.HasPrefix(importPath, "~/"):
		return filepath.Clean(filepath.Join(r.homeDir, importPath[2:]))
	case strings.HasPrefix(importPath, "/"):
		return filepath.Clean(importPath)
	default:
		return r.canonical(importPath, fromDir)
	}
}

// canonical makes path absolute relative to dir and cleans it.
func (r *Resolver) canonical(path, dir string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dir, path))
}

func (r *Resolver) violation(dir Directive, message string) lint.Violation {
	v, err := lint.NewViolation(RuleID, message, lint.SeverityError, dir.Location)
	if err != nil {
		// Directive locations are produced by Extract and are always
		// valid; a failure here is a bug in this package.
		panic(err)
	}
	return v
}
