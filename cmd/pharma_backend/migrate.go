package main

import (
	"fmt"

	"github.com/SscSPs/pharma_backend/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply all pending migrations, or roll back the latest one",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}

			changed, err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrationDirection(args[0]), logger)
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "migrations %s applied\n", args[0])
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no change")
			}
			return nil
		},
	}
}
