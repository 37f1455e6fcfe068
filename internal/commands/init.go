package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/thaidoc/internal/config"
	"github.com/cleared-dev/thaidoc/internal/document"
	"github.com/cleared-dev/thaidoc/internal/fileio"
	"github.com/cleared-dev/thaidoc/internal/logger"
)

func newInitCommand(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new thaidoc project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return a.runInit(cmd, absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "seller business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (a *app) runInit(cmd *cobra.Command, dir, name string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if fileio.FileExists(fileio.OS, cfgPath) {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Create directory structure.
	for _, d := range []string{document.DefaultOutputDir, "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := document.DefaultOutputDir + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	logger.Get(cmd.Context()).Info("project initialized", zap.String("dir", dir), zap.String("seller", name))
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized thaidoc project at %s\n", dir)
	return nil
}
