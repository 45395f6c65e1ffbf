package di

import (
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
)

// Middlewares はアプリケーションのミドルウェアを保持します
type Middlewares struct {
	JWTAuth    *middleware.JWTAuthMiddleware
	RateLimit  *middleware.RateLimitMiddleware
	Permission *middleware.PermissionMiddleware
	Audit      *middleware.AuditMiddleware
}

// NewMiddlewares はContainerから全てのミドルウェアを初期化します
func NewMiddlewares(c *Container) *Middlewares {
	return &Middlewares{
		JWTAuth:    middleware.NewJWTAuthMiddleware(c.JWTService, c.JWTBlacklist, c.PrincipalRepo),
		RateLimit:  middleware.NewRateLimitMiddleware(c.RateLimiter, c.config.RateLimit.Enabled),
		Permission: middleware.NewPermissionMiddleware(c.AccessService),
		Audit:      middleware.NewAuditMiddleware(c.AuditService),
	}
}
