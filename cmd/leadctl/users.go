package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
)

var (
	errUserNotFound = errors.New("user not found")
	errUnknownRole  = errors.New("unknown role")
)

const (
	promoteUserQuery = `UPDATE users SET is_staff = TRUE, is_superuser = (is_superuser OR $2), updated_at = NOW()
		WHERE email = $1 RETURNING id`
	findRoleIDQuery    = `SELECT id FROM roles WHERE name = $1`
	updateProfileQuery = `UPDATE user_profiles SET role_id = $1, updated_at = NOW() WHERE user_id = $2`
)

// promoteOptions はユーザー昇格の指定です
type promoteOptions struct {
	Email     string
	Superuser bool
	Role      string
}

func newUsersCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var opts promoteOptions
	promote := &cobra.Command{
		Use:   "promote",
		Short: "Grant staff (and optionally superuser) status to a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withDB(func(db *sql.DB) error {
				id, err := promoteUser(cmd.Context(), db, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %d promoted\n", id)
				return nil
			})
		},
	}
	promote.Flags().StringVar(&opts.Email, "email", "", "email of the user to promote")
	promote.Flags().BoolVar(&opts.Superuser, "superuser", false, "also grant superuser status")
	promote.Flags().StringVar(&opts.Role, "role", "", "role to set on the user's profile")
	_ = promote.MarkFlagRequired("email")

	cmd.AddCommand(promote)
	return cmd
}

// promoteUser はユーザーをスタッフに昇格し、指定があればロールも設定します
func promoteUser(ctx context.Context, db *sql.DB, opts promoteOptions) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(opts.Email))
	if email == "" {
		return 0, errors.New("--email is required")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var userID int64
	if err := tx.QueryRowContext(ctx, promoteUserQuery, email, opts.Superuser).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", errUserNotFound, email)
		}
		return 0, err
	}

	if opts.Role != "" {
		role, err := authz.NewRoleName(opts.Role)
		if err != nil {
			return 0, err
		}
		var roleID int64
		if err := tx.QueryRowContext(ctx, findRoleIDQuery, role.String()).Scan(&roleID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, fmt.Errorf("%w: %s", errUnknownRole, role)
			}
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, updateProfileQuery, roleID, userID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return userID, nil
}
