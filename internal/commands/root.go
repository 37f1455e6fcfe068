package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/thaidoc/internal/buildinfo"
	"github.com/cleared-dev/thaidoc/internal/config"
	"github.com/cleared-dev/thaidoc/internal/logger"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "thaidoc",
		Short:   "Thai invoices, quotations and receipts",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newTotalsCommand(a))
	rootCmd.AddCommand(newGenerateCommand(a))
	rootCmd.AddCommand(newThaiDateCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	l, err := logger.New(level)
	if err != nil {
		return err
	}
	cmd.SetContext(logger.WithLogger(cmd.Context(), l))

	l.Debug("configuration loaded", zap.String("path", a.configPath), zap.String("seller", cfg.Seller.Name))
	return nil
}
