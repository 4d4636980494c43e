// Package include renders literal-code blocks from referenced source files,
// optionally narrowed to named CVL elements.
package include

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Certora/docs-infrastructure/internal/codelink"
	"github.com/Certora/docs-infrastructure/internal/config"
	"github.com/Certora/docs-infrastructure/internal/cvl"
)

// DefaultSpacing is the number of blank lines between extracted elements
// when the spacing option is absent.
const DefaultSpacing = 1

// Options mirror the directive options of the include extension. All slicing
// options apply in order: element extraction, marker filters, line filter,
// dedent, prepend/append.
type Options struct {
	// CVLObject is a whitespace-separated list of element ids to extract.
	CVLObject string
	// Spacing is the number of blank lines between extracted elements; nil
	// means DefaultSpacing.
	Spacing *int
	// Lines selects 1-based line ranges from the (possibly already filtered)
	// text, e.g. "1,4-6".
	Lines string
	// StartAfter drops everything up to and including the first line
	// containing it.
	StartAfter string
	// EndBefore drops everything from the first line containing it.
	EndBefore string
	// Dedent strips up to n leading spaces from every line.
	Dedent int
	// Prepend and Append add raw lines around the final text.
	Prepend string
	Append  string
	// Language forces the highlight language.
	Language string
	// Caption adds a caption; an empty non-nil caption requests the default
	// caption, a code link to the included file.
	Caption *string
	// EmphasizeLines marks lines of the final text for emphasis, e.g. "2-3".
	EmphasizeLines string
}

// Block is a rendered literal-code block.
type Block struct {
	Source         string // absolute path of the included file
	Text           string
	Language       string
	Caption        string
	CaptionHref    string
	EmphasizeLines []int
}

// Reader renders include blocks. File references go through the code-link
// resolution rules, so remappings and the code-path override apply here too.
type Reader struct {
	cfg      *config.Config
	resolver *codelink.Resolver
	logger   *slog.Logger
}

// NewReader builds a Reader. A nil logger uses slog.Default.
func NewReader(cfg *config.Config, resolver *codelink.Resolver, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{cfg: cfg, resolver: resolver, logger: logger}
}

// Read renders the block for ref as seen from the document directory.
// Element lookup failures and malformed options fail the whole include;
// nothing is partially rendered.
func (r *Reader) Read(ref, currentDocDir string, opts Options) (*Block, error) {
	ctx := r.cfg.LinkContext()
	path, err := ctx.AbsPath(ref, currentDocDir)
	if err != nil {
		return nil, err
	}

	doc, err := cvl.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", ref, err)
	}

	text, err := r.extract(doc, opts)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	if lines, err = filterLines(lines, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	lines = dedentLines(lines, opts.Dedent)
	if opts.Prepend != "" {
		lines = append(splitLines(opts.Prepend), lines...)
	}
	if opts.Append != "" {
		lines = append(lines, splitLines(opts.Append)...)
	}

	block := &Block{
		Source:   path,
		Text:     strings.Join(lines, "\n"),
		Language: r.language(path, opts),
	}

	if opts.EmphasizeLines != "" {
		ranges, err := ParseLineSpec(opts.EmphasizeLines, len(lines))
		if err != nil {
			return nil, fmt.Errorf("invalid emphasize-lines %q: %w", opts.EmphasizeLines, err)
		}
		for _, n := range ranges {
			if n > len(lines) {
				r.logger.Warn("emphasize-lines out of range",
					slog.String("file", ref), slog.Int("line", n), slog.Int("lines", len(lines)))
				continue
			}
			block.EmphasizeLines = append(block.EmphasizeLines, n)
		}
	}

	if err := r.caption(block, ref, currentDocDir, opts); err != nil {
		return nil, err
	}
	return block, nil
}

// extract applies the cvlobject filter, or returns the whole file.
func (r *Reader) extract(doc *cvl.Document, opts Options) (string, error) {
	if opts.CVLObject == "" {
		return doc.Text(1, doc.NumLines()), nil
	}

	ids, warnings, err := cvl.ParseIDs(opts.CVLObject)
	if err != nil {
		return "", err
	}
	for _, warning := range warnings {
		r.logger.Warn("cvlobject option", slog.String("file", doc.Path),
			slog.String("warning", warning))
	}

	elements, err := cvl.Locate(doc, ids)
	if err != nil {
		return "", err
	}

	spacing := DefaultSpacing
	if opts.Spacing != nil {
		spacing = *opts.Spacing
	}
	return cvl.Render(elements, spacing), nil
}

func (r *Reader) language(path string, opts Options) string {
	if opts.Language != "" {
		return opts.Language
	}
	if lang := r.cfg.LanguageFor(path); lang != "" {
		return lang
	}
	if opts.CVLObject != "" {
		return "cvl"
	}
	return ""
}

// caption fills in the caption fields. An empty requested caption becomes a
// code link to the included file, named after the file. The reference
// resolves from the same document directory the include itself used.
func (r *Reader) caption(block *Block, ref, currentDocDir string, opts Options) error {
	if opts.Caption == nil {
		return nil
	}
	if *opts.Caption != "" {
		block.Caption = *opts.Caption
		return nil
	}

	target, err := r.resolver.Resolve(ref, currentDocDir)
	if err != nil {
		return err
	}
	block.Caption = filepath.Base(block.Source)
	block.CaptionHref = target.Href()
	return nil
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// filterLines applies start-after, end-before and the lines option, in that
// order.
func filterLines(lines []string, opts Options) ([]string, error) {
	if opts.StartAfter != "" {
		idx := -1
		for i, line := range lines {
			if strings.Contains(line, opts.StartAfter) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("start-after pattern %q not found", opts.StartAfter)
		}
		lines = lines[idx+1:]
	}

	if opts.EndBefore != "" {
		idx := -1
		for i, line := range lines {
			if strings.Contains(line, opts.EndBefore) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("end-before pattern %q not found", opts.EndBefore)
		}
		lines = lines[:idx]
	}

	if opts.Lines != "" {
		selected, err := ParseLineSpec(opts.Lines, len(lines))
		if err != nil {
			return nil, fmt.Errorf("invalid lines %q: %w", opts.Lines, err)
		}
		out := make([]string, 0, len(selected))
		for _, n := range selected {
			if n >= 1 && n <= len(lines) {
				out = append(out, lines[n-1])
			}
		}
		lines = out
	}
	return lines, nil
}

func dedentLines(lines []string, dedent int) []string {
	if dedent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		n := 0
		for n < dedent && n < len(line) && line[n] == ' ' {
			n++
		}
		out[i] = line[n:]
	}
	return out
}
