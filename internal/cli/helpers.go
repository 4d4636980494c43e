package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Certora/docs-infrastructure/internal/config"
)

// loadConfig loads the build configuration for a command, from --config when
// given or by searching upward from the working directory.
func loadConfig(cmd *cobra.Command, logger *slog.Logger) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read --config flag: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return config.NewLoader(logger).Load(path, cwd)
}

// currentDocDir is the directory relative references resolve against when a
// command runs outside any particular document: the working directory.
func currentDocDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return cwd, nil
}
