package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteIfMissing writes data to path unless a file already exists there,
// creating parent directories as needed. Scaffolding must never clobber
// files the user has edited.
func WriteIfMissing(path string, data []byte, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func EnsureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
