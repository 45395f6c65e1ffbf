package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
)

// AuditLogRepository は監査ログリポジトリの実装です
type AuditLogRepository struct {
	*database.BaseRepository
}

// NewAuditLogRepository は新しいAuditLogRepositoryを作成します
func NewAuditLogRepository(txManager *database.TxManager) *AuditLogRepository {
	return &AuditLogRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create は監査ログを作成します
func (r *AuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	const q = `
		INSERT INTO audit_logs (id, user_id, action, resource_type, resource_id, details,
		                        ip_address, user_agent, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.Querier(ctx).Exec(ctx, q,
		log.ID,
		log.UserID,
		string(log.Action),
		string(log.ResourceType),
		log.ResourceID,
		log.Details,
		log.IPAddress,
		log.UserAgent,
		log.RequestID,
		log.CreatedAt,
	)
	return r.HandleError(err, "AuditLog")
}

// ListByUserID はユーザーIDで監査ログを新しい順に取得します
func (r *AuditLogRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.AuditLog, error) {
	const q = `
		SELECT id, user_id, action, resource_type, resource_id, details, ip_address, user_agent, request_id, created_at
		FROM audit_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.Querier(ctx).Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, r.HandleError(err, "AuditLog")
	}
	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.AuditLog, error) {
		var (
			l                    entity.AuditLog
			action, resourceType string
		)
		err := row.Scan(&l.ID, &l.UserID, &action, &resourceType, &l.ResourceID, &l.Details,
			&l.IPAddress, &l.UserAgent, &l.RequestID, &l.CreatedAt)
		l.Action = entity.AuditAction(action)
		l.ResourceType = entity.AuditResourceType(resourceType)
		return &l, err
	})
	if err != nil {
		return nil, r.HandleError(err, "AuditLog")
	}
	return logs, nil
}

// DeleteOlderThan は指定時刻より古い監査ログを削除します
func (r *AuditLogRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.Querier(ctx).Exec(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, before)
	if err != nil {
		return 0, r.HandleError(err, "AuditLog")
	}
	return tag.RowsAffected(), nil
}

// インターフェースの実装を保証
var _ repository.AuditLogRepository = (*AuditLogRepository)(nil)
