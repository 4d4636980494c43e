// Package check validates every code reference in a documentation tree, so
// broken includes and links fail the build instead of rendering misleading
// content.
package check

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// pageSuffixes are the documentation source formats scanned for references.
var pageSuffixes = map[string]bool{".rst": true, ".md": true}

// DiscoverPages walks the documentation source tree and returns the pages to
// check, as paths relative to sourceDir, sorted. Excludes are doublestar
// patterns matched against the relative slash path.
func DiscoverPages(sourceDir string, excludes []string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if excluded(rel, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			// Underscore directories hold templates and static assets.
			if strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}

		if pageSuffixes[filepath.Ext(path)] {
			pages = append(pages, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)
	return pages, nil
}

func excluded(rel string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
