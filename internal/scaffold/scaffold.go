// Package scaffold writes the starter tree for a new documentation project.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Certora/docs-infrastructure/internal/config"
	"github.com/Certora/docs-infrastructure/internal/fileutil"
)

//go:embed templates
var templateFS embed.FS

// Options configure a quickstart run.
type Options struct {
	// Path is the project root directory; it is created when missing.
	Path string
	// Project is the project name.
	Project string
	// Theme is the theme name; empty means DefaultTheme.
	Theme string
	// CodePath is the code folder relative to the source dir; normalized to
	// the root-absolute form code references use.
	CodePath string
	// LinkToGithub selects the link style written to the configuration.
	LinkToGithub bool
	// Version of the documented project, optional.
	Version string
}

// SourceDirName and BuildDirName split sources from build output.
const (
	SourceDirName = "source"
	BuildDirName  = "build"
)

// Run writes the project tree: source/build split, a root document, static
// and template folders, a spelling word list and the build configuration.
// An already-configured project is left untouched.
func Run(opts Options) error {
	if opts.Project == "" {
		return fmt.Errorf("project name is required")
	}
	theme := opts.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	if _, err := LookupTheme(theme); err != nil {
		return err
	}

	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return err
	}
	sourceDir := filepath.Join(root, SourceDirName)
	configPath := filepath.Join(sourceDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", configPath)
	}

	for _, dir := range []string{
		sourceDir,
		filepath.Join(root, BuildDirName),
		filepath.Join(sourceDir, "_static"),
		filepath.Join(sourceDir, "_templates"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data := templateData{
		Project:      opts.Project,
		TitleLine:    strings.Repeat("=", len(opts.Project)),
		Theme:        theme,
		CodePath:     rootAbsolute(opts.CodePath),
		LinkToGithub: opts.LinkToGithub,
		Version:      opts.Version,
	}

	if err := renderTemplate("docsinfra.yaml.tmpl", configPath, data); err != nil {
		return err
	}
	if err := renderTemplate("index.rst.tmpl", filepath.Join(sourceDir, "index.rst"), data); err != nil {
		return err
	}

	wordlist, err := templateFS.ReadFile("templates/spelling_wordlist.txt")
	if err != nil {
		return err
	}
	return fileutil.WriteIfMissing(
		filepath.Join(sourceDir, "spelling_wordlist.txt"), wordlist, 0644)
}

type templateData struct {
	Project      string
	TitleLine    string
	Theme        string
	CodePath     string
	LinkToGithub bool
	Version      string
}

// rootAbsolute normalizes the code path to the leading-separator form used
// by root-absolute references.
func rootAbsolute(codePath string) string {
	codePath = filepath.ToSlash(codePath)
	if strings.HasPrefix(codePath, "/") {
		return codePath
	}
	return "/" + codePath
}

func renderTemplate(name, destination string, data templateData) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return err
	}
	var rendered strings.Builder
	if err := tmpl.Execute(&rendered, data); err != nil {
		return err
	}
	return fileutil.WriteIfMissing(destination,
		[]byte(fileutil.EnsureTrailingNewline(rendered.String())), 0644)
}
