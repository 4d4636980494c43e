package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Certora/docs-infrastructure/internal/config"
)

// setupProject writes a minimal documentation tree and returns its config
// file path.
func setupProject(t *testing.T) (configPath, dir string) {
	t.Helper()
	dir = t.TempDir()

	spec := "/// A rule.\nrule r(env e) {\n    assert true;\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "Voting.spec"), []byte(spec), 0o644); err != nil {
		t.Fatal(err)
	}

	configPath = filepath.Join(dir, config.FileName)
	content := "project: Voting\nlink_to_github: false\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return configPath, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIncludeCommand(t *testing.T) {
	configPath, _ := setupProject(t)

	out, err := execute(t, "include", "--config", configPath, "--cvlobject", "r", "/Voting.spec")
	if err != nil {
		t.Fatalf("include failed: %v", err)
	}
	if !strings.Contains(out, "```cvl\n") {
		t.Fatalf("missing fenced block:\n%s", out)
	}
	if !strings.Contains(out, "rule r(env e) {") {
		t.Fatalf("missing extracted rule:\n%s", out)
	}
}

func TestIncludeCommandCaption(t *testing.T) {
	configPath, _ := setupProject(t)

	out, err := execute(t, "include", "--config", configPath, "--caption", "", "/Voting.spec")
	if err != nil {
		t.Fatalf("include failed: %v", err)
	}
	if !strings.Contains(out, "Voting.spec (file://") {
		t.Fatalf("missing default caption:\n%s", out)
	}

	out, err = execute(t, "include", "--config", configPath, "/Voting.spec")
	if err != nil {
		t.Fatalf("include failed: %v", err)
	}
	if strings.Contains(out, "file://") {
		t.Fatalf("caption rendered without being requested:\n%s", out)
	}
}

func TestIncludeCommandUnknownElement(t *testing.T) {
	configPath, _ := setupProject(t)

	if _, err := execute(t, "include", "--config", configPath, "--cvlobject", "nope", "/Voting.spec"); err == nil {
		t.Fatal("expected a lookup error")
	}
}

func TestLinkCommand(t *testing.T) {
	configPath, _ := setupProject(t)

	out, err := execute(t, "link", "--config", configPath, "--local", "the spec </Voting.spec>")
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if !strings.HasPrefix(out, "the spec\t") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "file://") {
		t.Fatalf("missing local href:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	configPath, dir := setupProject(t)

	page := "See :clink:`/Voting.spec`.\n\n.. cvlinclude:: /Voting.spec\n   :cvlobject: r\n"
	if err := os.WriteFile(filepath.Join(dir, "index.rst"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "check", "--config", configPath, dir)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1 pages, 2 references, 0 problems") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestCheckCommandReportsBrokenReferences(t *testing.T) {
	configPath, dir := setupProject(t)

	page := ".. cvlinclude:: /Voting.spec\n   :cvlobject: missingRule\n"
	if err := os.WriteFile(filepath.Join(dir, "index.rst"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "check", "--config", configPath, dir)
	if err == nil {
		t.Fatalf("expected an error:\n%s", out)
	}
	if !strings.Contains(out, "index.rst:1:") {
		t.Fatalf("problems must name page and line:\n%s", out)
	}
}

func TestQuickstartCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "quickstart", "--project", "Voting Tutorial", dir)
	if err != nil {
		t.Fatalf("quickstart failed: %v", err)
	}
	if !strings.Contains(out, "Voting Tutorial") {
		t.Fatalf("missing confirmation:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "source", config.FileName)); err != nil {
		t.Fatalf("config not written: %v", err)
	}
}

func TestQuickstartCommandRequiresProject(t *testing.T) {
	if _, err := execute(t, "quickstart", t.TempDir()); err == nil {
		t.Fatal("expected an error for the missing --project flag")
	}
}
