package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Certora/docs-infrastructure/internal/codelink"
	"github.com/Certora/docs-infrastructure/internal/include"
)

func RunInclude(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	opts, err := includeOptions(cmd)
	if err != nil {
		return err
	}

	docDir, err := currentDocDir()
	if err != nil {
		return err
	}

	resolver := codelink.NewResolver(cfg.LinkContext(), nil, logger)
	reader := include.NewReader(cfg, resolver, logger)
	block, err := reader.Read(args[0], docDir, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if block.Caption != "" {
		if block.CaptionHref != "" {
			fmt.Fprintf(out, "%s (%s)\n", block.Caption, block.CaptionHref)
		} else {
			fmt.Fprintln(out, block.Caption)
		}
	}
	if block.Language != "" {
		fmt.Fprintf(out, "```%s\n", block.Language)
	} else {
		fmt.Fprintln(out, "```")
	}
	fmt.Fprintln(out, block.Text)
	fmt.Fprintln(out, "```")
	return nil
}

func includeOptions(cmd *cobra.Command) (include.Options, error) {
	var opts include.Options
	var err error

	if opts.CVLObject, err = cmd.Flags().GetString("cvlobject"); err != nil {
		return opts, err
	}
	if cmd.Flags().Changed("spacing") {
		spacing, err := cmd.Flags().GetInt("spacing")
		if err != nil {
			return opts, err
		}
		if spacing < 0 {
			return opts, fmt.Errorf("spacing must be non-negative, got %d", spacing)
		}
		opts.Spacing = &spacing
	}
	if opts.Lines, err = cmd.Flags().GetString("lines"); err != nil {
		return opts, err
	}
	if opts.StartAfter, err = cmd.Flags().GetString("start-after"); err != nil {
		return opts, err
	}
	if opts.EndBefore, err = cmd.Flags().GetString("end-before"); err != nil {
		return opts, err
	}
	if opts.Dedent, err = cmd.Flags().GetInt("dedent"); err != nil {
		return opts, err
	}
	if opts.Language, err = cmd.Flags().GetString("language"); err != nil {
		return opts, err
	}
	if opts.EmphasizeLines, err = cmd.Flags().GetString("emphasize-lines"); err != nil {
		return opts, err
	}

	// A caption is only rendered when asked for; an empty --caption requests
	// the default code-link caption.
	if cmd.Flags().Changed("caption") {
		caption, err := cmd.Flags().GetString("caption")
		if err != nil {
			return opts, err
		}
		opts.Caption = &caption
	}
	return opts, nil
}
