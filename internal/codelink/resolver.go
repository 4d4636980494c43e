package codelink

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Target is a resolved reference: a local filesystem path and, for remote
// link style, the browsable URL it maps to.
type Target struct {
	Path   string // absolute local path
	Remote string // remote URL, "" for local targets
}

// IsRemote reports whether the target links to a hosted repository.
func (t Target) IsRemote() bool {
	return t.Remote != ""
}

// Href returns the hyperlink target: the remote URL, or a file:// URI for
// local targets.
func (t Target) Href() string {
	if t.IsRemote() {
		return t.Remote
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(t.Path)}).String()
}

// Resolver turns references into Targets according to a Context. Resolution
// is a pure function of the reference, the context and repository metadata;
// resolving the same reference twice yields the same target.
//
// Target existence is not checked here. The consumer that reads the file or
// emits the link decides what a missing path means.
type Resolver struct {
	ctx    *Context
	opener RepositoryOpener
	logger *slog.Logger
}

// NewResolver builds a Resolver. A nil opener uses the git binary, a nil
// logger uses slog.Default.
func NewResolver(ctx *Context, opener RepositoryOpener, logger *slog.Logger) *Resolver {
	if opener == nil {
		opener = GitRepositoryOpener{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{ctx: ctx, opener: opener, logger: logger}
}

// Resolve resolves ref relative to the directory of the current document.
// With local link style the result is always a local target and no
// repository metadata is touched. With remote style, a missing repository or
// a non-GitHub remote degrades to a local target; only a detached head that
// matches no remote branch tip is an error.
func (r *Resolver) Resolve(ref, currentDocDir string) (Target, error) {
	abs, err := r.ctx.AbsPath(ref, currentDocDir)
	if err != nil {
		return Target{}, err
	}

	if !r.ctx.LinkToGithub {
		return Target{Path: abs}, nil
	}

	remote, err := r.remoteURL(ref, abs)
	if err != nil {
		return Target{}, err
	}
	return Target{Path: abs, Remote: remote}, nil
}

// remoteURL builds the GitHub URL for abs, or "" when the target degrades to
// a local link.
func (r *Resolver) remoteURL(ref, abs string) (string, error) {
	repo, err := r.opener.Open(abs)
	if err != nil {
		r.logger.Warn("no git repository found, falling back to local link",
			slog.String("ref", ref), slog.String("path", abs))
		return "", nil
	}

	remote, err := repo.RemoteURL()
	if err != nil {
		r.logger.Warn("repository has no remote, falling back to local link",
			slog.String("ref", ref), slog.String("path", abs))
		return "", nil
	}
	base, err := normalizeRemoteURL(remote)
	if err != nil || !isGithubURL(base) {
		r.logger.Warn("remote is not on github.com, falling back to local link",
			slog.String("ref", ref), slog.String("remote", remote))
		return "", nil
	}

	branch, err := r.resolveBranch(ref, repo)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(repo.RootDir(), abs)
	if err != nil {
		return "", fmt.Errorf("path %s outside repository %s: %w", abs, repo.RootDir(), err)
	}

	kind := "blob"
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		kind = "tree"
	}
	return base + path.Join(kind, branch, filepath.ToSlash(rel)), nil
}

// resolveBranch determines the branch to link. On a detached head, typical
// for pinned sub-module checkouts, the head commit is matched against the
// remote branch tips; no match is an error.
func (r *Resolver) resolveBranch(ref string, repo Repository) (string, error) {
	branch, err := repo.CurrentBranch()
	if err != nil {
		return "", err
	}
	if branch != "" {
		return branch, nil
	}

	head, err := repo.HeadCommit()
	if err != nil {
		return "", err
	}
	tips, err := repo.BranchTips()
	if err != nil {
		return "", err
	}

	var matched []string
	for name, commit := range tips {
		if commit == head {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return "", &PathError{
			Reason: ReasonAmbiguousRef,
			Ref:    ref,
			Detail: fmt.Sprintf("detached head %.12s matches no remote branch", head),
		}
	}
	sort.Strings(matched)
	return matched[0], nil
}

var sshRemotePattern = regexp.MustCompile(`^(.*)@([^:]*):(.*?)(\.git)?$`)

var githubHostPattern = regexp.MustCompile(`\bgithub\.com\b`)

// normalizeRemoteURL converts a git remote URL to a https:// base URL with a
// trailing slash, e.g. git@github.com:Certora/Examples.git becomes
// https://github.com/Certora/Examples/.
func normalizeRemoteURL(remote string) (string, error) {
	u := remote
	if !strings.HasPrefix(u, "https://") {
		m := sshRemotePattern.FindStringSubmatch(u)
		if m == nil {
			return "", fmt.Errorf("unrecognized remote url %q", remote)
		}
		u = "https://" + m[2] + "/" + m[3]
	}
	u = strings.TrimSuffix(u, ".git")
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u, nil
}

func isGithubURL(u string) bool {
	return githubHostPattern.MatchString(u)
}
