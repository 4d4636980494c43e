package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Certora/docs-infrastructure/internal/config"
)

func TestRunCreatesProjectTree(t *testing.T) {
	root := t.TempDir()

	err := Run(Options{
		Path:         root,
		Project:      "Voting Tutorial",
		CodePath:     "../code",
		LinkToGithub: true,
		Version:      "1.2.0",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, path := range []string{
		filepath.Join(SourceDirName, config.FileName),
		filepath.Join(SourceDirName, "index.rst"),
		filepath.Join(SourceDirName, "spelling_wordlist.txt"),
		filepath.Join(SourceDirName, "_static"),
		filepath.Join(SourceDirName, "_templates"),
		BuildDirName,
	} {
		if _, err := os.Stat(filepath.Join(root, path)); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(root, SourceDirName, "index.rst"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "Voting Tutorial") {
		t.Fatalf("index.rst does not carry the project name:\n%s", index)
	}
	if !strings.HasSuffix(string(index), "\n") {
		t.Fatal("index.rst must end with a newline")
	}
}

// The written configuration must load back through the config package.
func TestRunConfigRoundTrip(t *testing.T) {
	root := t.TempDir()

	err := Run(Options{
		Path:         root,
		Project:      "Voting",
		CodePath:     "../code",
		LinkToGithub: false,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	cfg, err := config.LoadFromFile(filepath.Join(root, SourceDirName, config.FileName))
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Project != "Voting" {
		t.Fatalf("Project = %q", cfg.Project)
	}
	if cfg.CodePathOverride != "/../code" {
		t.Fatalf("CodePathOverride = %q", cfg.CodePathOverride)
	}
	if cfg.LinkToGithub == nil || *cfg.LinkToGithub {
		t.Fatal("link_to_github: false was not written")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("generated config does not validate: %v", err)
	}
}

func TestRunRefusesExistingProject(t *testing.T) {
	root := t.TempDir()

	opts := Options{Path: root, Project: "Voting", CodePath: "code"}
	if err := Run(opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	err := Run(opts)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected a refusal, got %v", err)
	}
}

func TestRunValidatesInput(t *testing.T) {
	if err := Run(Options{Path: t.TempDir()}); err == nil {
		t.Fatal("expected an error for a missing project name")
	}
	err := Run(Options{Path: t.TempDir(), Project: "Voting", Theme: "no-such-theme"})
	if err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Fatalf("expected an unknown-theme error, got %v", err)
	}
}

func TestThemes(t *testing.T) {
	if _, err := LookupTheme(DefaultTheme); err != nil {
		t.Fatalf("the default theme must exist: %v", err)
	}

	names := ThemeNames()
	if len(names) == 0 {
		t.Fatal("no themes registered")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("theme names not sorted: %v", names)
		}
	}

	description := DescribeThemes()
	for _, name := range names {
		if !strings.Contains(description, name) {
			t.Fatalf("DescribeThemes misses %q: %s", name, description)
		}
	}
}
