package service

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// AuditService は監査ログを記録するサービスインターフェースです
type AuditService interface {
	// Log は監査ログを非同期で記録します
	Log(ctx context.Context, entry AuditEntry)
}

// AuditEntry は監査ログの記録に必要な情報を定義します
type AuditEntry struct {
	UserID       *int64
	Action       entity.AuditAction
	ResourceType entity.AuditResourceType
	ResourceID   *int64
	Details      map[string]any
	IPAddress    string
	UserAgent    string
	RequestID    string
}

// NopAuditService は何も記録しない AuditService です
type NopAuditService struct{}

// Log は何もしません
func (NopAuditService) Log(context.Context, AuditEntry) {}
