package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/mrewrin/LeadTransfer/pkg/config"
)

// cli はサブコマンド間で共有する状態です
type cli struct {
	databaseURL string
	openDB      func(url string) (*sql.DB, error)
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(&cli{openDB: openPostgres})
}

func newRootCommandWith(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "leadctl",
		Short:         "LeadTransfer operations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.databaseURL != "" {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.databaseURL = cfg.Database.URL
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.databaseURL, "database-url", "", "PostgreSQL connection URL (default: $DATABASE_URL)")

	root.AddCommand(newMigrateCommand(c), newRolesCommand(c), newUsersCommand(c))
	return root
}

// withDB はデータベース接続を開いて fn を実行し、終了後に閉じます
func (c *cli) withDB(fn func(db *sql.DB) error) error {
	db, err := c.openDB(c.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	return fn(db)
}

func openPostgres(url string) (*sql.DB, error) {
	return sql.Open("pgx", url)
}
