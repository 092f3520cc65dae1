package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/FruitClicker_Go/internal/bootstrap"
	"github.com/osse101/FruitClicker_Go/internal/config"
)

// rootOptions holds flags shared by every subcommand
type rootOptions struct {
	Backend    string
	SQLitePath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fruitclicker",
		Short: "FruitClicker economy server",
		Long: `FruitClicker runs the clicker game economy: collecting fruit, selling it,
the player marketplace, trades and autoclickers.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "override STORAGE_BACKEND (postgres|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.SQLitePath, "sqlite-path", "", "override SQLITE_PATH")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSimulateCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newResetCommand(opts))

	return cmd
}

// loadConfig reads the environment and applies flag overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.Backend != "" {
		cfg.StorageBackend = o.Backend
	}
	if o.SQLitePath != "" {
		cfg.SQLitePath = o.SQLitePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApplication loads configuration, installs the logger and wires the services
func (o *rootOptions) openApplication(ctx context.Context) (*bootstrap.Application, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	bootstrap.SetupLogger(cfg)
	return bootstrap.NewApplication(ctx, cfg)
}
