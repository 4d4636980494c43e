package extension

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Certora/docs-infrastructure/internal/codelink"
)

// RoleNameCodeLink is the role name for source-code links.
const RoleNameCodeLink = "clink"

// explicitTitlePattern splits "title <target>" role text.
var explicitTitlePattern = regexp.MustCompile(`^(.+?)\s*<(.+)>$`)

// SplitRoleText splits role text into title and target. Bare text is both at
// once, with the title reduced to the file name.
func SplitRoleText(raw string) (title, target string, explicit bool) {
	raw = strings.TrimSpace(raw)
	if m := explicitTitlePattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return filepath.Base(raw), raw, false
}

// CodeLink implements the clink role: it resolves a path reference and turns
// it into a hyperlink, remote or local according to the build configuration.
type CodeLink struct {
	resolver *codelink.Resolver
	logger   *slog.Logger
}

// NewCodeLink builds the role handler. A nil logger uses slog.Default.
func NewCodeLink(resolver *codelink.Resolver, logger *slog.Logger) *CodeLink {
	if logger == nil {
		logger = slog.Default()
	}
	return &CodeLink{resolver: resolver, logger: logger}
}

func (c *CodeLink) Name() string {
	return RoleNameCodeLink
}

// Run resolves the role text. A local link whose target file is missing is
// reported as a warning but still rendered; whether that fails the build is
// the caller's decision.
func (c *CodeLink) Run(rawText, currentDocDir string) (*Link, error) {
	title, ref, _ := SplitRoleText(rawText)

	target, err := c.resolver.Resolve(ref, currentDocDir)
	if err != nil {
		return nil, err
	}

	if !target.IsRemote() {
		if _, statErr := os.Stat(target.Path); statErr != nil {
			c.logger.Warn("link target does not exist",
				slog.String("ref", ref), slog.String("path", target.Path))
		}
	}

	return &Link{
		Title:  title,
		Href:   target.Href(),
		Path:   target.Path,
		Remote: target.IsRemote(),
	}, nil
}
