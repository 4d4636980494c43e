// Package extension exposes the documentation extension points: the
// cvlinclude directive and the clink role, behind a registry the build
// commands dispatch through.
package extension

import (
	"github.com/Certora/docs-infrastructure/internal/include"
)

// Link is the rendered result of a role: display text plus hyperlink target.
type Link struct {
	Title  string
	Href   string
	Path   string // resolved local path
	Remote bool
}

// RoleHandler renders an inline role from its raw text.
type RoleHandler interface {
	// Name returns the role name, e.g. "clink".
	Name() string

	// Run renders the role as used in a document living in currentDocDir.
	Run(rawText, currentDocDir string) (*Link, error)
}

// DirectiveHandler renders a block directive.
type DirectiveHandler interface {
	// Name returns the directive name, e.g. "cvlinclude".
	Name() string

	// Run renders the directive with its argument and option map.
	Run(argument string, options map[string]string, currentDocDir string) (*include.Block, error)
}

// Registry holds the registered directive and role handlers.
type Registry struct {
	roles      map[string]RoleHandler
	directives map[string]DirectiveHandler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		roles:      make(map[string]RoleHandler),
		directives: make(map[string]DirectiveHandler),
	}
}

// RegisterRole adds a role handler.
func (r *Registry) RegisterRole(h RoleHandler) {
	r.roles[h.Name()] = h
}

// RegisterDirective adds a directive handler.
func (r *Registry) RegisterDirective(h DirectiveHandler) {
	r.directives[h.Name()] = h
}

// Role returns the handler registered under name.
func (r *Registry) Role(name string) (RoleHandler, bool) {
	h, ok := r.roles[name]
	return h, ok
}

// Directive returns the handler registered under name.
func (r *Registry) Directive(name string) (DirectiveHandler, bool) {
	h, ok := r.directives[name]
	return h, ok
}
