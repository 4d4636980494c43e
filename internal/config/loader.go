package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Loader finds and loads the build configuration.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger uses slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the configuration at path when given; otherwise it searches for
// a docsinfra.yaml from dir upward. Defaults apply underneath whatever is
// found; no config file at all is not an error, the defaults then resolve
// relative to dir.
func (l *Loader) Load(path, dir string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = l.findConfig(dir)
	}
	if path == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		config.SourceDir = abs
		l.logger.Debug("no config file found, using defaults",
			slog.String("source_dir", abs))
	} else {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		config.Merge(loaded)
		config.SourceDir = loaded.SourceDir
		l.logger.Debug("loaded config", slog.String("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// findConfig walks from dir toward the filesystem root looking for the
// config file.
func (l *Loader) findConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
