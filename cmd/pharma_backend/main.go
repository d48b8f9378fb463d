package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/pharma_backend/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title Pharma Backend API
// @version 1.0
// @description Chart of accounts for pharmacy billing: companies, account groups and ledgers.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pharma_backend",
		Short: "Pharmacy accounting backend: companies, account groups and ledgers",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand(), newMigrateCommand(), newSeedCommand(), newTokenCommand())

	return rootCmd
}

// bootstrap loads configuration and installs the JSON logger as the default.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
