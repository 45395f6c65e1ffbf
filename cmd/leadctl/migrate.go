package main

import (
	"database/sql"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrewrin/LeadTransfer/migrations"
)

func newMigrateCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withDB(func(db *sql.DB) error {
					if err := migrations.Up(cmd.Context(), db); err != nil {
						return err
					}
					version, err := migrations.Version(cmd.Context(), db)
					if err != nil {
						return err
					}
					slog.Info("migrations applied", "version", version)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withDB(func(db *sql.DB) error {
					return migrations.Down(cmd.Context(), db)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withDB(func(db *sql.DB) error {
					return migrations.Status(cmd.Context(), db)
				})
			},
		},
	)
	return cmd
}
