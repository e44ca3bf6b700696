package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honorly/config"
	"honorly/config/sqlite"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create every table in the configured database",
		Long: `Create every table the API uses. Safe to run repeatedly.

The database path comes from config.yaml or DATABASE_PATH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx := cmd.Context()
			db, err := sqlite.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := sqlite.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready at %s\n", cfg.Database.Path)
			return nil
		},
	}
}
