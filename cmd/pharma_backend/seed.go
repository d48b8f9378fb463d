package main

import (
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/pharma_backend/internal/core/services"
	"github.com/SscSPs/pharma_backend/internal/middleware"
	"github.com/SscSPs/pharma_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/pharma_backend/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var companyID string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the default chart of accounts for a company",
		Long:  "Seeds the default groups and ledgers. Without --company the most recently created company is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}

			dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(dbPool)

			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
			ctx := middleware.ContextWithLogger(cmd.Context(), logger.With(slog.String("command", "seed")))

			result, err := container.Seed.SeedDefaults(ctx, companyID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company ID (defaults to the latest company)")
	return cmd
}
