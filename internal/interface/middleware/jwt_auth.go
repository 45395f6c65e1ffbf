package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/pkg/jwt"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

var errNoCredentials = errors.New("no credentials")

// JWTAuthMiddleware はJWT認証ミドルウェアを提供します
type JWTAuthMiddleware struct {
	jwtService *jwt.JWTService
	blacklist  repository.TokenBlacklist
	principals repository.PrincipalRepository
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
func NewJWTAuthMiddleware(
	jwtService *jwt.JWTService,
	blacklist repository.TokenBlacklist,
	principals repository.PrincipalRepository,
) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		jwtService: jwtService,
		blacklist:  blacklist,
		principals: principals,
	}
}

// Authenticate は認証必須のミドルウェアを返します
func (m *JWTAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.resolve(c); err != nil {
				if errors.Is(err, errNoCredentials) {
					return apperror.NewUnauthorizedError("authentication credentials were not provided")
				}
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth はオプショナル認証ミドルウェアを返します
// ヘッダーが無ければ匿名として続行し、不正なトークンは拒否します
func (m *JWTAuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.resolve(c); err != nil {
				if errors.Is(err, errNoCredentials) {
					SetPrincipal(c, authz.Anonymous())
					return next(c)
				}
				return err
			}
			return next(c)
		}
	}
}

func (m *JWTAuthMiddleware) resolve(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errNoCredentials
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return apperror.NewUnauthorizedError("invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateAccessToken(parts[1])
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperror.NewTokenExpiredError()
		}
		return apperror.NewUnauthorizedError("token is invalid or expired")
	}

	ctx := c.Request().Context()

	// ブラックリストの確認に失敗した場合はログを出力して続行
	if m.blacklist != nil {
		revoked, err := m.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			logger.WithContext(ctx).Warn("token blacklist lookup failed", "error", err)
		} else if revoked {
			return apperror.NewUnauthorizedError("token has been revoked")
		}
	}

	principal, err := m.principals.LoadPrincipal(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewUnauthorizedError("user not found")
		}
		return err
	}
	if !principal.IsActive {
		return apperror.NewUnauthorizedError("user is inactive")
	}

	c.Set(ContextKeySessionID, claims.SessionID)
	c.Set(ContextKeyAccessClaims, claims)
	SetPrincipal(c, principal)

	// リクエストコンテキストにも設定（ログ出力で使用）
	ctx = logger.ContextWithUserID(ctx, claims.UserID)
	ctx = logger.ContextWithSessionID(ctx, claims.SessionID)
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}
