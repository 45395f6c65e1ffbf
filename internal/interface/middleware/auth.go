package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/pkg/jwt"
)

const (
	ContextKeyUserID       = "user_id"
	ContextKeySessionID    = "session_id"
	ContextKeyAccessClaims = "access_claims"
	ContextKeyPrincipal    = "principal"
)

// GetUserID はコンテキストからユーザーIDを取得します
// 未認証の場合は 0 を返します
func GetUserID(c echo.Context) int64 {
	if id, ok := c.Get(ContextKeyUserID).(int64); ok {
		return id
	}
	return 0
}

// GetSessionID はコンテキストからセッションIDを取得します
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(ContextKeySessionID).(string); ok {
		return id
	}
	return ""
}

// GetAccessClaims はコンテキストからアクセストークンのクレームを取得します
func GetAccessClaims(c echo.Context) *jwt.AccessTokenClaims {
	if claims, ok := c.Get(ContextKeyAccessClaims).(*jwt.AccessTokenClaims); ok {
		return claims
	}
	return nil
}

// GetPrincipal はコンテキストから認可主体を取得します
// 設定されていない場合は匿名の主体を返します
func GetPrincipal(c echo.Context) authz.Principal {
	if p, ok := c.Get(ContextKeyPrincipal).(authz.Principal); ok {
		return p
	}
	return authz.Anonymous()
}

// SetPrincipal はコンテキストに認可主体を設定します
func SetPrincipal(c echo.Context, p authz.Principal) {
	c.Set(ContextKeyPrincipal, p)
	if p.Authenticated() {
		c.Set(ContextKeyUserID, p.UserID)
	}
}
