package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
)

// RoleAssignmentRepository はロール割り当て履歴リポジトリの実装です
type RoleAssignmentRepository struct {
	*database.BaseRepository
}

// NewRoleAssignmentRepository は新しいRoleAssignmentRepositoryを作成します
func NewRoleAssignmentRepository(txManager *database.TxManager) *RoleAssignmentRepository {
	return &RoleAssignmentRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create は履歴を追記します
func (r *RoleAssignmentRepository) Create(ctx context.Context, a *entity.RoleAssignment) error {
	const q = `
		INSERT INTO role_assignment_history (target_user_id, assigned_by_id, role_id, assigned_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var assignedBy *int64
	if a.AssignedByID != 0 {
		assignedBy = &a.AssignedByID
	}
	err := r.Querier(ctx).QueryRow(ctx, q, a.TargetUserID, assignedBy, a.RoleID, a.AssignedAt).Scan(&a.ID)
	return r.HandleError(err, "RoleAssignment")
}

// ListByTargetUserID は対象ユーザーの履歴を新しい順に返します
func (r *RoleAssignmentRepository) ListByTargetUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.RoleAssignment, error) {
	const q = `
		SELECT h.id, h.target_user_id, COALESCE(h.assigned_by_id, 0), h.role_id, r.name, h.assigned_at
		FROM role_assignment_history h
		JOIN roles r ON r.id = h.role_id
		WHERE h.target_user_id = $1
		ORDER BY h.assigned_at DESC, h.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.Querier(ctx).Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, r.HandleError(err, "RoleAssignment")
	}
	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.RoleAssignment, error) {
		var a entity.RoleAssignment
		err := row.Scan(&a.ID, &a.TargetUserID, &a.AssignedByID, &a.RoleID, &a.RoleName, &a.AssignedAt)
		return &a, err
	})
	if err != nil {
		return nil, r.HandleError(err, "RoleAssignment")
	}
	return history, nil
}

// CountByTargetUserID は対象ユーザーの履歴件数を返します
func (r *RoleAssignmentRepository) CountByTargetUserID(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM role_assignment_history WHERE target_user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, r.HandleError(err, "RoleAssignment")
	}
	return count, nil
}

var _ repository.RoleAssignmentRepository = (*RoleAssignmentRepository)(nil)
