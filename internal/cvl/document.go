package cvl

import (
	"os"
	"strings"
)

// Document holds the lines of one spec file. It is immutable once loaded and
// identified by its resolved filesystem path.
type Document struct {
	Path  string
	lines []string
}

// Load reads a spec file into a Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(path, string(data)), nil
}

// NewDocument builds a Document from already-read content.
func NewDocument(path, content string) *Document {
	content = strings.TrimSuffix(content, "\n")
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	return &Document{Path: path, lines: lines}
}

// NumLines returns the number of lines in the document.
func (d *Document) NumLines() int {
	return len(d.lines)
}

// Line returns the 1-based line n, without its newline.
func (d *Document) Line(n int) string {
	return d.lines[n-1]
}

// Text returns the text of the inclusive 1-based line range [start, end],
// without a trailing newline.
func (d *Document) Text(start, end int) string {
	return strings.Join(d.lines[start-1:end], "\n")
}
