package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Certora/docs-infrastructure/internal/check"
	"github.com/Certora/docs-infrastructure/internal/extension"
)

func RunCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	sourceDir := cfg.SourceDir
	if len(args) > 0 {
		sourceDir = args[0]
	}

	registry := extension.Setup(cfg, nil, logger)
	checker := check.NewChecker(registry, logger)
	result, err := checker.Run(sourceDir, cfg.Exclude)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, problem := range result.Problems {
		fmt.Fprintln(out, problem)
	}
	fmt.Fprintf(out, "%d pages, %d references, %d problems\n",
		result.Pages, result.References, len(result.Problems))
	if !result.OK() {
		return fmt.Errorf("%d broken references", len(result.Problems))
	}
	return nil
}
