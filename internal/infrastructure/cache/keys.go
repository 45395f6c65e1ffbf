package cache

import (
	"fmt"
	"strconv"
)

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	// セッション関連
	PrefixSession      KeyPrefix = "session"       // session:{session_id}
	PrefixUserSessions KeyPrefix = "user:sessions" // user:sessions:{user_id}

	// JWT関連
	PrefixJWTBlacklist KeyPrefix = "jwt:blacklist" // jwt:blacklist:{jti}

	// レート制限
	PrefixRateLimit KeyPrefix = "ratelimit" // ratelimit:{type}:{identifier}
)

// SessionKey はセッションキーを生成します
func SessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", PrefixSession, sessionID)
}

// UserSessionsKey はユーザーのセッション一覧キーを生成します
func UserSessionsKey(userID int64) string {
	return fmt.Sprintf("%s:%s", PrefixUserSessions, strconv.FormatInt(userID, 10))
}

// JWTBlacklistKey はJWTブラックリストキーを生成します
func JWTBlacklistKey(jti string) string {
	return fmt.Sprintf("%s:%s", PrefixJWTBlacklist, jti)
}

// RateLimitKey はレート制限キーを生成します
func RateLimitKey(limitType, identifier string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixRateLimit, limitType, identifier)
}
