// Package codelink resolves symbolic references to source files into local
// paths or browsable GitHub URLs.
package codelink

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RemapSigil prefixes path remapping keys, e.g. @examples/Voting.sol.
const RemapSigil = "@"

// Reason classifies a PathError.
type Reason string

const (
	// ReasonUnknownRemap means the reference used a remap key that is not
	// configured.
	ReasonUnknownRemap Reason = "unknown-remap"
	// ReasonAmbiguousRef means a detached checkout's commit matched no known
	// remote branch tip, so no branch can be linked.
	ReasonAmbiguousRef Reason = "ambiguous-ref"
)

// PathError reports a reference that could not be resolved.
type PathError struct {
	Reason Reason
	Ref    string
	Detail string
}

func (e *PathError) Error() string {
	msg := fmt.Sprintf("%s: cannot resolve %q", e.Reason, e.Ref)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Context carries the path-resolution configuration. It is built once when
// the documentation configuration loads and is read-only afterwards, so
// parallel page renders may share it.
type Context struct {
	// SourceDir is the documentation source directory. Root-absolute
	// references, remapping values and the code-path override are all
	// interpreted relative to it.
	SourceDir string
	// CodePathOverride replaces SourceDir as the base of root-absolute
	// references when non-empty.
	CodePathOverride string
	// Remappings maps "@key" prefixes to directories relative to SourceDir.
	Remappings map[string]string
	// LinkToGithub selects remote links over local file links.
	LinkToGithub bool
}

// Overridden reports whether a code-path override is configured.
func (c *Context) Overridden() bool {
	return c.CodePathOverride != ""
}

// Remapping returns the directory configured for a remap key, which must
// include the sigil.
func (c *Context) Remapping(key string) (string, bool) {
	if !strings.HasPrefix(key, RemapSigil) {
		return "", false
	}
	dir, ok := c.Remappings[key]
	return dir, ok
}

// AbsPath resolves a reference to an absolute filesystem path. The first
// matching rule wins: a remap prefix expands to its configured directory, a
// root-absolute reference resolves against the override (or SourceDir), and
// anything else resolves against the directory of the current document.
//
// References escaping SourceDir through ".." segments are resolved as-is;
// the surrounding framework's own path handling is equally permissive.
func (c *Context) AbsPath(ref, currentDocDir string) (string, error) {
	ref = filepath.ToSlash(ref)
	switch {
	case strings.HasPrefix(ref, RemapSigil):
		key, rest, _ := strings.Cut(ref, "/")
		dir, ok := c.Remapping(key)
		if !ok {
			return "", &PathError{Reason: ReasonUnknownRemap, Ref: ref, Detail: key}
		}
		return filepath.Abs(filepath.Join(c.SourceDir, filepath.FromSlash(dir), filepath.FromSlash(rest)))
	case strings.HasPrefix(ref, "/"):
		base := c.SourceDir
		if c.Overridden() {
			base = filepath.Join(c.SourceDir, filepath.FromSlash(c.CodePathOverride))
		}
		return filepath.Abs(filepath.Join(base, filepath.FromSlash(ref[1:])))
	default:
		return filepath.Abs(filepath.Join(currentDocDir, filepath.FromSlash(ref)))
	}
}
