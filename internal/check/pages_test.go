package check

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscoverPages(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.rst":            "",
		"tutorial/page.md":     "",
		"tutorial/deep/a.rst":  "",
		"notes.txt":            "",
		"Voting.spec":          "",
		"_templates/page.rst":  "",
		"_static/included.rst": "",
		"build/out.rst":        "",
		"drafts/wip.rst":       "",
	})

	pages, err := DiscoverPages(dir, []string{"build/**", "drafts/**"})
	if err != nil {
		t.Fatalf("DiscoverPages failed: %v", err)
	}
	want := []string{"index.rst", "tutorial/deep/a.rst", "tutorial/page.md"}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("pages = %v, want %v", pages, want)
	}
}

func TestDiscoverPagesNoExcludes(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.rst":     "",
		"build/out.rst": "",
	})

	pages, err := DiscoverPages(dir, nil)
	if err != nil {
		t.Fatalf("DiscoverPages failed: %v", err)
	}
	want := []string{"build/out.rst", "index.rst"}
	if !reflect.DeepEqual(pages, want) {
		t.Fatalf("pages = %v, want %v", pages, want)
	}
}
