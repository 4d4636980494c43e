package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "file.txt")

	if err := WriteIfMissing(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteIfMissing failed: %v", err)
	}
	if err := WriteIfMissing(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteIfMissing failed on existing file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Fatalf("existing file was overwritten: %q", data)
	}
}

func TestEnsureTrailingNewline(t *testing.T) {
	if got := EnsureTrailingNewline("a"); got != "a\n" {
		t.Fatalf("got %q", got)
	}
	if got := EnsureTrailingNewline("a\n"); got != "a\n" {
		t.Fatalf("got %q", got)
	}
	if got := EnsureTrailingNewline(""); got != "\n" {
		t.Fatalf("got %q", got)
	}
}
