package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Certora/docs-infrastructure/internal/scaffold"
)

func RunQuickstart(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	project, err := cmd.Flags().GetString("project")
	if err != nil {
		return err
	}
	theme, err := cmd.Flags().GetString("theme")
	if err != nil {
		return err
	}
	codePath, err := cmd.Flags().GetString("code")
	if err != nil {
		return err
	}
	noGithub, err := cmd.Flags().GetBool("no-link-to-github")
	if err != nil {
		return err
	}
	version, err := cmd.Flags().GetString("version")
	if err != nil {
		return err
	}

	opts := scaffold.Options{
		Path:         path,
		Project:      project,
		Theme:        theme,
		CodePath:     codePath,
		LinkToGithub: !noGithub,
		Version:      version,
	}
	if err := scaffold.Run(opts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized project %q in %s\n", project, path)
	return nil
}
