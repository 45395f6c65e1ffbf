package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// RoleRepository はロールレジストリを定義します
// ロールは作成後に変更されません
type RoleRepository interface {
	// GetOrCreate は名前でロールを取得し、存在しなければ作成します
	GetOrCreate(ctx context.Context, name authz.RoleName) (*entity.Role, error)

	// FindByName は名前でロールを検索します
	// 存在しない場合は NotFound エラーを返します
	FindByName(ctx context.Context, name authz.RoleName) (*entity.Role, error)

	// FindByNames は複数の名前でロールを検索します（存在するもののみ）
	FindByNames(ctx context.Context, names []authz.RoleName) ([]*entity.Role, error)

	// List は全ロールを名前順で返します
	List(ctx context.Context) ([]*entity.Role, error)
}
