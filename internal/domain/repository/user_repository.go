package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

// UserRepository はユーザーリポジトリインターフェースを定義します
type UserRepository interface {
	// Create はユーザーを作成し、採番されたIDを設定します
	Create(ctx context.Context, user *entity.User) error

	// Update はユーザーを更新します
	Update(ctx context.Context, user *entity.User) error

	// FindByID はIDでユーザーを検索します
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail はメールアドレスでユーザーを検索します
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)

	// Exists はメールアドレスが存在するかを確認します
	Exists(ctx context.Context, email valueobject.Email) (bool, error)
}
