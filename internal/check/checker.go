package check

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Certora/docs-infrastructure/internal/extension"
)

// Problem is one failed reference.
type Problem struct {
	Page    string
	Line    int
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s:%d: %s", p.Page, p.Line, p.Message)
}

// Result summarizes one checker run.
type Result struct {
	Pages      int
	References int
	Problems   []Problem
}

// OK reports whether every reference resolved.
func (r *Result) OK() bool {
	return len(r.Problems) == 0
}

// Checker runs every code reference of a documentation tree through the
// registered extension handlers. Each reference is checked independently: a
// broken one is recorded and the scan continues, so a single run reports all
// defects.
type Checker struct {
	registry *extension.Registry
	logger   *slog.Logger
}

// NewChecker builds a Checker. A nil logger uses slog.Default.
func NewChecker(registry *extension.Registry, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{registry: registry, logger: logger}
}

// Run checks all pages under sourceDir, skipping the exclude patterns.
// Roles and directives without a registered handler belong to the host
// framework and are ignored.
func (c *Checker) Run(sourceDir string, excludes []string) (*Result, error) {
	pages, err := DiscoverPages(sourceDir, excludes)
	if err != nil {
		return nil, err
	}

	result := &Result{Pages: len(pages)}
	for _, page := range pages {
		path := filepath.Join(sourceDir, filepath.FromSlash(page))
		refs, err := ExtractReferences(path, page)
		if err != nil {
			return nil, fmt.Errorf("cannot scan %s: %w", page, err)
		}

		docDir := filepath.Dir(path)
		for _, ref := range refs {
			checked, problem := c.checkReference(ref, docDir)
			if !checked {
				continue
			}
			result.References++
			if problem != "" {
				result.Problems = append(result.Problems, Problem{
					Page:    ref.Page,
					Line:    ref.Line,
					Message: problem,
				})
			}
		}
	}
	return result, nil
}

// checkReference runs one reference through its handler. The first return
// value reports whether a handler was registered for it at all.
func (c *Checker) checkReference(ref Reference, docDir string) (checked bool, problem string) {
	switch {
	case ref.Role != "":
		handler, ok := c.registry.Role(ref.Role)
		if !ok {
			return false, ""
		}
		if _, err := handler.Run(ref.Text, docDir); err != nil {
			return true, err.Error()
		}
		return true, ""
	case ref.Directive != "":
		handler, ok := c.registry.Directive(ref.Directive)
		if !ok {
			return false, ""
		}
		if _, err := handler.Run(ref.Argument, ref.Options, docDir); err != nil {
			return true, err.Error()
		}
		return true, ""
	}
	return false, ""
}
