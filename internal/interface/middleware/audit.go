package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

const ContextKeyAuditService = "audit_service"

// AuditMiddleware は監査ログサービスをコンテキストに注入するミドルウェアです
type AuditMiddleware struct {
	auditService service.AuditService
}

// NewAuditMiddleware は新しいAuditMiddlewareを作成します
func NewAuditMiddleware(auditService service.AuditService) *AuditMiddleware {
	return &AuditMiddleware{auditService: auditService}
}

// Inject はAuditServiceをEchoコンテキストに注入するミドルウェアを返します
func (m *AuditMiddleware) Inject() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyAuditService, m.auditService)
			return next(c)
		}
	}
}

// GetAuditService はEchoコンテキストからAuditServiceを取得します
func GetAuditService(c echo.Context) service.AuditService {
	if svc, ok := c.Get(ContextKeyAuditService).(service.AuditService); ok {
		return svc
	}
	return nil
}

// AuditHelper は監査ログ記録のヘルパー関数です
// 操作者はコンテキストの認可主体から取得します
func AuditHelper(c echo.Context, action entity.AuditAction, resourceType entity.AuditResourceType, resourceID *int64, details map[string]any) {
	var userID *int64
	if uid := GetUserID(c); uid != 0 {
		userID = &uid
	}
	AuditAs(c, userID, action, resourceType, resourceID, details)
}

// AuditAs は操作者を明示して監査ログを記録します
// ログイン直後など、コンテキストに主体が無い場合に使用します
func AuditAs(c echo.Context, userID *int64, action entity.AuditAction, resourceType entity.AuditResourceType, resourceID *int64, details map[string]any) {
	svc := GetAuditService(c)
	if svc == nil {
		return
	}

	svc.Log(c.Request().Context(), service.AuditEntry{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		IPAddress:    c.RealIP(),
		UserAgent:    c.Request().UserAgent(),
		RequestID:    GetRequestID(c),
	})
}
