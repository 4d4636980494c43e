package check

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Certora/docs-infrastructure/internal/config"
	"github.com/Certora/docs-infrastructure/internal/extension"
)

func newTestChecker(t *testing.T) (*Checker, string) {
	t.Helper()
	dir := t.TempDir()

	spec := "/// A rule.\nrule r(env e) {\n    assert true;\n}\n"
	writeTree(t, dir, map[string]string{
		"voting/Voting.spec": spec,
	})

	off := false
	cfg := config.DefaultConfig()
	cfg.SourceDir = dir
	cfg.LinkToGithub = &off

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := extension.Setup(cfg, nil, logger)
	return NewChecker(registry, logger), dir
}

func TestCheckerCleanTree(t *testing.T) {
	checker, dir := newTestChecker(t)
	writeTree(t, dir, map[string]string{
		"index.rst": "See :clink:`voting/Voting.spec`.\n\n" +
			".. cvlinclude:: voting/Voting.spec\n   :cvlobject: r\n",
	})

	result, err := checker.Run(dir, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.OK() {
		t.Fatalf("expected a clean result, got %v", result.Problems)
	}
	if result.Pages != 1 || result.References != 2 {
		t.Fatalf("Pages = %d, References = %d", result.Pages, result.References)
	}
}

func TestCheckerReportsAllProblems(t *testing.T) {
	checker, dir := newTestChecker(t)
	writeTree(t, dir, map[string]string{
		"index.rst": ":clink:`@nope/Missing.sol`\n\n" +
			".. cvlinclude:: voting/Voting.spec\n   :cvlobject: noSuchRule\n\n" +
			".. cvlinclude:: voting/Missing.spec\n",
		"other.rst": ".. cvlinclude:: voting/Voting.spec\n   :cvlobject: r\n",
	})

	result, err := checker.Run(dir, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.OK() {
		t.Fatal("expected problems")
	}
	if len(result.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %v", result.Problems)
	}
	if result.References != 4 {
		t.Fatalf("References = %d, want 4", result.References)
	}

	for _, p := range result.Problems {
		if p.Page != "index.rst" {
			t.Fatalf("problem on the wrong page: %v", p)
		}
		if !strings.Contains(p.String(), "index.rst:") {
			t.Fatalf("problem string must carry page and line: %q", p.String())
		}
	}
}

func TestCheckerIgnoresForeignReferences(t *testing.T) {
	checker, dir := newTestChecker(t)
	writeTree(t, dir, map[string]string{
		"index.rst": "See :doc:`other` and :ref:`anchor`.\n\n" +
			".. toctree::\n   :maxdepth: 1\n",
	})

	result, err := checker.Run(dir, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.References != 0 {
		t.Fatalf("foreign references must not be counted, got %d", result.References)
	}
	if !result.OK() {
		t.Fatalf("unexpected problems: %v", result.Problems)
	}
}

func TestCheckerHonorsExcludes(t *testing.T) {
	checker, dir := newTestChecker(t)
	writeTree(t, dir, map[string]string{
		"index.rst":      "Nothing here.\n",
		"drafts/bad.rst": ".. cvlinclude:: voting/Missing.spec\n",
	})

	result, err := checker.Run(dir, []string{"drafts/**"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.OK() {
		t.Fatalf("excluded pages must not be checked: %v", result.Problems)
	}
	if result.Pages != 1 {
		t.Fatalf("Pages = %d, want 1", result.Pages)
	}
}

func TestCheckerDocDirIsPageDir(t *testing.T) {
	checker, dir := newTestChecker(t)
	writeTree(t, dir, map[string]string{
		// The relative reference climbs from the page directory.
		"tutorial/page.rst": ".. cvlinclude:: ../voting/Voting.spec\n   :cvlobject: r\n",
	})

	result, err := checker.Run(dir, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.OK() {
		t.Fatalf("page-relative reference failed: %v", result.Problems)
	}
	if result.References != 1 {
		t.Fatalf("References = %d", result.References)
	}
}
