package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ListRoleHistoryInput はロール変更履歴取得の入力を定義します
type ListRoleHistoryInput struct {
	Actor  authz.Principal
	UserID int64
	Limit  int
	Offset int
}

// ListRoleHistoryOutput はロール変更履歴取得の出力を定義します
type ListRoleHistoryOutput struct {
	Assignments []*entity.RoleAssignment
	Total       int
	Limit       int
	Offset      int
}

// ListRoleHistoryQuery はロール変更履歴（新しい順）を返すクエリです
type ListRoleHistoryQuery struct {
	historyRepo repository.RoleAssignmentRepository
	access      service.AccessService
}

// NewListRoleHistoryQuery は新しいListRoleHistoryQueryを作成します
func NewListRoleHistoryQuery(historyRepo repository.RoleAssignmentRepository, access service.AccessService) *ListRoleHistoryQuery {
	return &ListRoleHistoryQuery{historyRepo: historyRepo, access: access}
}

// Execute はロール変更履歴を取得します
func (q *ListRoleHistoryQuery) Execute(ctx context.Context, input ListRoleHistoryInput) (*ListRoleHistoryOutput, error) {
	if err := q.access.Authorize(authz.PolicyAdminOrModerator, input.Actor); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := max(input.Offset, 0)

	assignments, err := q.historyRepo.ListByTargetUserID(ctx, input.UserID, limit, offset)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	total, err := q.historyRepo.CountByTargetUserID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &ListRoleHistoryOutput{
		Assignments: assignments,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}
