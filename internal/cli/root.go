package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Certora/docs-infrastructure/internal/scaffold"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docsinfra",
		Short: "Certora documentation infrastructure tools",
		Long: `Docsinfra supports Certora document projects: it scaffolds new
projects, extracts CVL elements from spec files for inclusion in
rendered pages, and resolves code references to local files or
GitHub links.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to docsinfra.yaml (default: search upward from the current directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	quickstartCmd := &cobra.Command{
		Use:   "quickstart [path]",
		Short: "Start a new Certora document project",
		Long: "Write a starter project tree: source/build folder split, a root\n" +
			"document and a build configuration.\n\nAvailable themes: " + scaffold.DescribeThemes(),
		Args: cobra.MaximumNArgs(1),
		RunE: RunQuickstart,
	}
	quickstartCmd.Flags().StringP("project", "p", "", "Project name (required)")
	quickstartCmd.Flags().StringP("version", "v", "", "Version of the documented project")
	quickstartCmd.Flags().String("theme", scaffold.DefaultTheme, "HTML theme for the project")
	quickstartCmd.Flags().String("code", "", "Path of the code folder, relative to the source dir")
	quickstartCmd.Flags().Bool("no-link-to-github", false, "Link to local files instead of GitHub")
	_ = quickstartCmd.MarkFlagRequired("project")

	includeCmd := &cobra.Command{
		Use:   "include <file>",
		Short: "Render a literal include block to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  RunInclude,
	}
	includeCmd.Flags().String("cvlobject", "", "CVL element ids to extract, separated by spaces")
	includeCmd.Flags().Int("spacing", 1, "Blank lines between extracted elements")
	includeCmd.Flags().String("lines", "", "Line ranges to include, e.g. 1,4-6")
	includeCmd.Flags().String("start-after", "", "Drop lines up to and including this marker")
	includeCmd.Flags().String("end-before", "", "Drop lines from this marker on")
	includeCmd.Flags().Int("dedent", 0, "Strip up to N leading spaces from every line")
	includeCmd.Flags().String("language", "", "Highlight language (default: by file suffix)")
	includeCmd.Flags().String("caption", "", "Caption text; empty uses a code link to the file")
	includeCmd.Flags().String("emphasize-lines", "", "Lines to emphasize, e.g. 2-3")

	linkCmd := &cobra.Command{
		Use:   "link <ref>",
		Short: "Resolve a code reference to a local path or GitHub URL",
		Args:  cobra.ExactArgs(1),
		RunE:  RunLink,
	}
	linkCmd.Flags().Bool("local", false, "Force local link style regardless of configuration")

	checkCmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check every code reference in the documentation tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunCheck,
	}

	rootCmd.AddCommand(quickstartCmd, includeCmd, linkCmd, checkCmd)
	return rootCmd
}

// newLogger builds the logger commands share, honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
