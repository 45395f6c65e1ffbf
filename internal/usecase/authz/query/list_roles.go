package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// ListRolesQuery は登録済みロール一覧クエリです
type ListRolesQuery struct {
	roleRepo repository.RoleRepository
}

// NewListRolesQuery は新しいListRolesQueryを作成します
func NewListRolesQuery(roleRepo repository.RoleRepository) *ListRolesQuery {
	return &ListRolesQuery{roleRepo: roleRepo}
}

// Execute はロール一覧を名前順で返します
func (q *ListRolesQuery) Execute(ctx context.Context) ([]*entity.Role, error) {
	roles, err := q.roleRepo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	return roles, nil
}
