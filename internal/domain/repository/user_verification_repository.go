package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// UserVerificationRepository は本人確認申請の永続化インターフェースです
type UserVerificationRepository interface {
	// Create は申請を作成します
	Create(ctx context.Context, verification *entity.UserVerification) error

	// Update は審査結果を保存します
	Update(ctx context.Context, verification *entity.UserVerification) error

	// FindLatestPendingByUserID はユーザーの最新の審査待ち申請を検索します
	FindLatestPendingByUserID(ctx context.Context, userID int64) (*entity.UserVerification, error)
}
