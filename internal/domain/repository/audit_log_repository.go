package repository

import (
	"context"
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// AuditLogRepository は監査ログの永続化インターフェースです
type AuditLogRepository interface {
	// Create は監査ログを作成します
	Create(ctx context.Context, log *entity.AuditLog) error
	// ListByUserID はユーザーIDで監査ログを取得します
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.AuditLog, error)
	// DeleteOlderThan は指定時刻より古い監査ログを削除し、削除件数を返します
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
