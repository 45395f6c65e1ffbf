package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
)

// JWTBlacklist はログアウト済みアクセストークンのブラックリストを管理します
type JWTBlacklist struct {
	client *redis.Client
}

// NewJWTBlacklist は新しいJWTBlacklistを作成します
func NewJWTBlacklist(client *redis.Client) *JWTBlacklist {
	return &JWTBlacklist{client: client}
}

// Add はトークンをブラックリストに追加します
// エントリはトークンの有効期限で自動的に消えます
func (b *JWTBlacklist) Add(ctx context.Context, jti string, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, JWTBlacklistKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted はトークンがブラックリストに存在するか確認します
func (b *JWTBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, JWTBlacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return exists > 0, nil
}

var _ repository.TokenBlacklist = (*JWTBlacklist)(nil)
