package repository

import (
	"context"
	"time"
)

// TokenBlacklist は失効したアクセストークン（jti）を管理します
type TokenBlacklist interface {
	// Add は jti をトークンの有効期限まで失効扱いにします
	Add(ctx context.Context, jti string, expiry time.Time) error

	// IsBlacklisted は jti が失効済みかを確認します
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
