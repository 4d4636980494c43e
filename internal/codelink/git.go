package codelink

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoRepository is returned by a RepositoryOpener when no version-control
// checkout encloses the given path.
var ErrNoRepository = errors.New("no git repository found")

// Repository exposes the read-only repository metadata needed for link
// building.
type Repository interface {
	// RootDir is the absolute path of the working tree root.
	RootDir() string
	// RemoteURL is the URL of the default remote.
	RemoteURL() (string, error)
	// HeadCommit is the commit hash the working tree is pinned to.
	HeadCommit() (string, error)
	// CurrentBranch is the checked-out branch name, or "" when the head is
	// detached.
	CurrentBranch() (string, error)
	// BranchTips maps remote branch names to their tip commits.
	BranchTips() (map[string]string, error)
}

// RepositoryOpener finds the repository enclosing a path.
type RepositoryOpener interface {
	Open(path string) (Repository, error)
}

// GitRepositoryOpener opens repositories by shelling out to the git binary.
// Only local metadata is read; no command touches the network.
type GitRepositoryOpener struct{}

func (GitRepositoryOpener) Open(path string) (Repository, error) {
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}

	root, err := runGit(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNoRepository
	}
	return &gitRepository{root: strings.TrimSpace(root)}, nil
}

type gitRepository struct {
	root string
}

func (r *gitRepository) RootDir() string {
	return r.root
}

func (r *gitRepository) RemoteURL() (string, error) {
	out, err := runGit(r.root, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", fmt.Errorf("no origin remote in %s: %w", r.root, err)
	}
	return strings.TrimSpace(out), nil
}

func (r *gitRepository) HeadCommit() (string, error) {
	out, err := runGit(r.root, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r *gitRepository) CurrentBranch() (string, error) {
	out, err := runGit(r.root, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch == "HEAD" {
		// Detached head.
		return "", nil
	}
	return branch, nil
}

func (r *gitRepository) BranchTips() (map[string]string, error) {
	out, err := runGit(r.root, "for-each-ref", "refs/remotes/origin",
		"--format=%(objectname) %(refname:short)")
	if err != nil {
		return nil, err
	}

	tips := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		commit, ref, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		branch := strings.TrimPrefix(ref, "origin/")
		if branch == "HEAD" {
			continue
		}
		tips[branch] = commit
	}
	return tips, nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w (stderr: %s)",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
