package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
)

// PrincipalRepository は認可主体をユーザーとプロファイルから組み立てます
type PrincipalRepository interface {
	// LoadPrincipal はユーザーIDで認可主体を読み込みます
	// ユーザーが存在しない場合は NotFound エラーを返します
	LoadPrincipal(ctx context.Context, userID int64) (authz.Principal, error)
}
