package worker

import (
	"context"
	"log/slog"
	"time"
)

// 既定のスケジュール
const (
	DefaultAuditRetentionSpec = "@daily"
	DefaultDatabaseHealthSpec = "@every 5m"
)

// AuditRetentionJobConfig は監査ログ保持ジョブの設定です
type AuditRetentionJobConfig struct {
	// RetentionDays は監査ログの保持日数です
	RetentionDays int
	Spec          string
}

// NewAuditRetentionJob は保持期間を過ぎた監査ログを削除するジョブを作成します
func NewAuditRetentionJob(deleteFn func(ctx context.Context, before time.Time) (int64, error), cfg AuditRetentionJobConfig) Job {
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 90
	}
	if cfg.Spec == "" {
		cfg.Spec = DefaultAuditRetentionSpec
	}

	return Job{
		Name: "audit_retention",
		Spec: cfg.Spec,
		Fn: func(ctx context.Context) error {
			before := time.Now().AddDate(0, 0, -cfg.RetentionDays)
			deleted, err := deleteFn(ctx, before)
			if err != nil {
				return err
			}
			if deleted > 0 {
				slog.Info("audit retention completed", "deleted", deleted, "before", before)
			}
			return nil
		},
	}
}

// NewDatabaseHealthJob はデータベース接続を定期確認するジョブを作成します
func NewDatabaseHealthJob(checkFn func(ctx context.Context) error, spec string) Job {
	if spec == "" {
		spec = DefaultDatabaseHealthSpec
	}
	return Job{
		Name: "db_health",
		Spec: spec,
		Fn: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := checkFn(ctx); err != nil {
				slog.Warn("database health check failed", "error", err)
				return err
			}
			return nil
		},
	}
}
