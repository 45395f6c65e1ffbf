package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType はトークン種別を表します
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// AccessTokenClaims はアクセストークンのクレームを定義します
// Role はロール未割り当ての場合 nil です
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Type      TokenType `json:"typ"`
	UserID    int64     `json:"uid"`
	Email     string    `json:"email"`
	Role      *string   `json:"role"`
	SessionID string    `json:"sid"`
}

// RefreshTokenClaims はリフレッシュトークンのクレームを定義します
type RefreshTokenClaims struct {
	jwt.RegisteredClaims
	Type      TokenType `json:"typ"`
	UserID    int64     `json:"uid"`
	SessionID string    `json:"sid"`
}

// Subject はアクセストークンの主体情報です
type Subject struct {
	UserID    int64
	Email     string
	Role      *string
	SessionID string
}
