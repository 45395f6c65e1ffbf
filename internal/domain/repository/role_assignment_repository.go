package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// RoleAssignmentRepository はロール割り当て履歴の永続化インターフェースです
// 履歴は追記のみで、更新・削除はありません
type RoleAssignmentRepository interface {
	// Create は履歴を追記します
	Create(ctx context.Context, assignment *entity.RoleAssignment) error

	// ListByTargetUserID は対象ユーザーの履歴を新しい順に返します
	ListByTargetUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.RoleAssignment, error)

	// CountByTargetUserID は対象ユーザーの履歴件数を返します
	CountByTargetUserID(ctx context.Context, userID int64) (int, error)
}
