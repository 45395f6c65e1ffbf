package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// PermissionMiddleware はルート単位のポリシーを評価するミドルウェアです
type PermissionMiddleware struct {
	access service.AccessService
}

// NewPermissionMiddleware は新しいPermissionMiddlewareを作成します
func NewPermissionMiddleware(access service.AccessService) *PermissionMiddleware {
	return &PermissionMiddleware{access: access}
}

// Require は主体がポリシーを満たすことを要求します
// 匿名の主体は 401、権限のない主体は 403 になります
func (m *PermissionMiddleware) Require(policy authz.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := GetPrincipal(c)
			if err := m.access.Authorize(policy, p); err != nil {
				logger.WithContext(c.Request().Context()).Debug("route access denied",
					"policy", policy.Name(),
					"method", c.Request().Method,
					"path", c.Path(),
				)
				if p.Authenticated() && isWriteMethod(c.Request().Method) {
					AuditHelper(c, entity.AuditActionAccessDenied, entity.AuditResourceRoute, nil, map[string]any{
						"policy": policy.Name(),
						"method": c.Request().Method,
						"route":  c.Path(),
					})
				}
				return err
			}
			return next(c)
		}
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}
