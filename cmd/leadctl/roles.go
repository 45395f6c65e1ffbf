package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
)

const insertRoleQuery = `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`

func newRolesCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage the role registry",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the canonical roles if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withDB(func(db *sql.DB) error {
				created, err := seedRoles(cmd.Context(), db, authz.CanonicalRoles())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "roles seeded: %d created, %d already present\n",
					created, len(authz.CanonicalRoles())-created)
				return nil
			})
		},
	})
	return cmd
}

// seedRoles は不足しているロールを作成し、新規作成した件数を返します
func seedRoles(ctx context.Context, db *sql.DB, roles []authz.RoleName) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	created := 0
	for _, role := range roles {
		res, err := tx.ExecContext(ctx, insertRoleQuery, role.String())
		if err != nil {
			return 0, fmt.Errorf("failed to seed role %q: %w", role, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		created += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}
