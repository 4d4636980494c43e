package extension

import (
	"log/slog"

	"github.com/Certora/docs-infrastructure/internal/codelink"
	"github.com/Certora/docs-infrastructure/internal/config"
	"github.com/Certora/docs-infrastructure/internal/include"
)

// Setup builds the registry with the standard handlers for one build
// configuration: the clink role and the cvlinclude directive, sharing a
// single resolver over the configuration's link context.
func Setup(cfg *config.Config, opener codelink.RepositoryOpener, logger *slog.Logger) *Registry {
	resolver := codelink.NewResolver(cfg.LinkContext(), opener, logger)
	reader := include.NewReader(cfg, resolver, logger)

	registry := NewRegistry()
	registry.RegisterRole(NewCodeLink(resolver, logger))
	registry.RegisterDirective(NewCVLInclude(reader))
	return registry
}
