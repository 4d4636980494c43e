package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Certora/docs-infrastructure/internal/codelink"
	"github.com/Certora/docs-infrastructure/internal/extension"
)

func RunLink(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	ctx := cfg.LinkContext()
	if local, err := cmd.Flags().GetBool("local"); err == nil && local {
		ctx.LinkToGithub = false
	}

	docDir, err := currentDocDir()
	if err != nil {
		return err
	}

	resolver := codelink.NewResolver(ctx, nil, logger)
	role := extension.NewCodeLink(resolver, logger)
	link, err := role.Run(args[0], docDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", link.Title, link.Href)
	return nil
}
