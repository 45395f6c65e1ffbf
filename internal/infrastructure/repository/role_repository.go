package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
)

// RoleRepository はロールレジストリのPostgreSQL実装です
type RoleRepository struct {
	*database.BaseRepository
}

// NewRoleRepository は新しいRoleRepositoryを作成します
func NewRoleRepository(txManager *database.TxManager) *RoleRepository {
	return &RoleRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// GetOrCreate は名前でロールを取得し、存在しなければ作成します
func (r *RoleRepository) GetOrCreate(ctx context.Context, name authz.RoleName) (*entity.Role, error) {
	const insert = `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	if _, err := r.Querier(ctx).Exec(ctx, insert, name.String()); err != nil {
		return nil, r.HandleError(err, "Role")
	}
	return r.FindByName(ctx, name)
}

// FindByName は名前でロールを検索します
func (r *RoleRepository) FindByName(ctx context.Context, name authz.RoleName) (*entity.Role, error) {
	const q = `SELECT id, name, created_at FROM roles WHERE name = $1`
	role, err := scanRole(r.Querier(ctx).QueryRow(ctx, q, name.String()))
	if err != nil {
		return nil, r.HandleError(err, "Role")
	}
	return role, nil
}

// FindByNames は複数の名前でロールを検索します
func (r *RoleRepository) FindByNames(ctx context.Context, names []authz.RoleName) ([]*entity.Role, error) {
	if len(names) == 0 {
		return []*entity.Role{}, nil
	}
	raw := make([]string, len(names))
	for i, n := range names {
		raw[i] = n.String()
	}
	const q = `SELECT id, name, created_at FROM roles WHERE name = ANY($1) ORDER BY name`
	return r.queryRoles(ctx, q, raw)
}

// List は全ロールを名前順で返します
func (r *RoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	return r.queryRoles(ctx, `SELECT id, name, created_at FROM roles ORDER BY name`)
}

func (r *RoleRepository) queryRoles(ctx context.Context, q string, args ...any) ([]*entity.Role, error) {
	rows, err := r.Querier(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, r.HandleError(err, "Role")
	}
	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Role, error) {
		return scanRole(row)
	})
	if err != nil {
		return nil, r.HandleError(err, "Role")
	}
	return roles, nil
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var (
		role entity.Role
		name string
	)
	if err := row.Scan(&role.ID, &name, &role.CreatedAt); err != nil {
		return nil, err
	}
	role.Name = authz.RoleName(name)
	return &role, nil
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
