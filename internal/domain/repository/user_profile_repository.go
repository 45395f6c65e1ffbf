package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// UserProfileRepository はユーザープロファイルリポジトリインターフェースを定義します
// 取得したプロファイルの Role はロール名まで解決済みです
type UserProfileRepository interface {
	// Create はユーザープロファイルを作成します
	Create(ctx context.Context, profile *entity.UserProfile) error

	// Update はユーザープロファイルを更新します
	Update(ctx context.Context, profile *entity.UserProfile) error

	// FindByUserID はユーザーIDでプロファイルを検索します
	FindByUserID(ctx context.Context, userID int64) (*entity.UserProfile, error)

	// FindByUserIDForUpdate はユーザーIDでプロファイルを行ロック付きで検索します
	// トランザクション内で呼び出す必要があります
	FindByUserIDForUpdate(ctx context.Context, userID int64) (*entity.UserProfile, error)
}
