// Package config loads and validates the docsinfra.yaml build configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Certora/docs-infrastructure/internal/codelink"
)

// FileName is the configuration file written next to the documentation
// sources.
const FileName = "docsinfra.yaml"

// DefaultLanguages maps file suffixes to highlight languages when no
// explicit language option is given.
var DefaultLanguages = map[string]string{
	".spec": "cvl",
	".sol":  "solidity",
	".conf": "json",
}

// Config is the build configuration consumed by the include directive, the
// code-link role and the reference checker.
type Config struct {
	// Project is the human-readable project name.
	Project string `yaml:"project"`

	// CodePathOverride replaces the source dir as the base for root-absolute
	// code references. Relative to the config file directory.
	CodePathOverride string `yaml:"code_path_override"`

	// LinkToGithub selects GitHub links over local file links. Defaults to
	// true; nil means unset so layered configs can still turn it off.
	LinkToGithub *bool `yaml:"link_to_github"`

	// PathRemappings maps "@key" prefixes to directories relative to the
	// config file directory.
	PathRemappings map[string]string `yaml:"path_remappings"`

	// Languages maps file suffixes to highlight languages, merged over the
	// built-in defaults.
	Languages map[string]string `yaml:"languages"`

	// Exclude lists doublestar glob patterns of documentation pages the
	// reference checker skips, relative to the source dir.
	Exclude []string `yaml:"exclude"`

	// SourceDir is the directory holding the config file. Set by the loader,
	// not read from YAML.
	SourceDir string `yaml:"-"`
}

// DefaultConfig returns a Config with the defaults the quickstart scaffold
// assumes.
func DefaultConfig() *Config {
	linkToGithub := true
	return &Config{
		LinkToGithub: &linkToGithub,
		Exclude:      []string{"build/**", "_build/**"},
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	for key := range c.PathRemappings {
		if !strings.HasPrefix(key, codelink.RemapSigil) {
			return fmt.Errorf("path_remappings key %q must start with %q", key, codelink.RemapSigil)
		}
	}
	for suffix := range c.Languages {
		if !strings.HasPrefix(suffix, ".") {
			return fmt.Errorf("languages key %q must be a file suffix starting with a dot", suffix)
		}
	}
	return nil
}

// Merge overlays other onto c; set values in other win.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Project != "" {
		c.Project = other.Project
	}
	if other.CodePathOverride != "" {
		c.CodePathOverride = other.CodePathOverride
	}
	if other.LinkToGithub != nil {
		c.LinkToGithub = other.LinkToGithub
	}
	if len(other.PathRemappings) > 0 {
		c.PathRemappings = other.PathRemappings
	}
	if len(other.Languages) > 0 {
		c.Languages = other.Languages
	}
	if len(other.Exclude) > 0 {
		c.Exclude = other.Exclude
	}
}

// LinkContext builds the read-only resolution context shared by all
// resolutions of this build.
func (c *Config) LinkContext() *codelink.Context {
	linkToGithub := true
	if c.LinkToGithub != nil {
		linkToGithub = *c.LinkToGithub
	}
	return &codelink.Context{
		SourceDir:        c.SourceDir,
		CodePathOverride: c.CodePathOverride,
		Remappings:       c.PathRemappings,
		LinkToGithub:     linkToGithub,
	}
}

// LanguageFor returns the highlight language for a file name, or "" when
// neither the configuration nor the defaults cover its suffix.
func (c *Config) LanguageFor(filename string) string {
	suffix := filepath.Ext(filename)
	if lang, ok := c.Languages[suffix]; ok {
		return lang
	}
	return DefaultLanguages[suffix]
}

// LoadFromFile loads a configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	config.SourceDir = abs
	return config, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
