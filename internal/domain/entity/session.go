package entity

import (
	"time"
)

const (
	// MaxActiveSessionsPerUser はユーザーあたりの最大アクティブセッション数
	MaxActiveSessionsPerUser = 10
)

// Session はリフレッシュトークンに紐づくセッションです
type Session struct {
	ID         string
	UserID     int64
	UserAgent  string
	IPAddress  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	LastUsedAt time.Time
}

// NewSession は新しいセッションを作成します
func NewSession(id string, userID int64, userAgent, ip string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		UserID:     userID,
		UserAgent:  userAgent,
		IPAddress:  ip,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}
}

// IsExpired はセッションが期限切れかを判定します
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid はセッションが有効かを判定します
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}

// UpdateLastUsed は最終使用日時を更新します
func (s *Session) UpdateLastUsed() {
	s.LastUsedAt = time.Now()
}
