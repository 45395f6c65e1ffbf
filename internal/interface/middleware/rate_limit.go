package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/infrastructure/cache"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// Limiter はレート制限の判定を行います
type Limiter interface {
	Allow(ctx context.Context, identifier string, config cache.RateLimitConfig) (*cache.RateLimitResult, error)
}

// RateLimitMiddleware はレート制限ミドルウェアを提供します
type RateLimitMiddleware struct {
	limiter Limiter
	enabled bool
}

// NewRateLimitMiddleware は新しいRateLimitMiddlewareを作成します
// enabled が false の場合、全てのリクエストを通過させます
func NewRateLimitMiddleware(limiter Limiter, enabled bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		enabled: enabled && limiter != nil,
	}
}

// ByIP はIPアドレスでレート制限するミドルウェアを返します
func (m *RateLimitMiddleware) ByIP(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return m.limit(config, func(c echo.Context) string {
		return c.RealIP()
	})
}

// ByUser はユーザーIDでレート制限するミドルウェアを返します
// 未認証の場合はIPアドレスで制限します
func (m *RateLimitMiddleware) ByUser(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return m.limit(config, func(c echo.Context) string {
		if uid := GetUserID(c); uid != 0 {
			return "user:" + strconv.FormatInt(uid, 10)
		}
		return c.RealIP()
	})
}

func (m *RateLimitMiddleware) limit(config cache.RateLimitConfig, identify func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !m.enabled {
			return next
		}
		return func(c echo.Context) error {
			result, err := m.limiter.Allow(c.Request().Context(), identify(c), config)
			if err != nil {
				// レート制限チェックに失敗した場合はリクエストを許可
				logger.WithContext(c.Request().Context()).Warn("rate limit check failed",
					"type", config.Type,
					"error", err,
				)
				return next(c)
			}

			setRateLimitHeaders(c, config, result)

			if !result.Allowed {
				return apperror.NewTooManyRequestsError("request was throttled")
			}
			return next(c)
		}
	}
}

// setRateLimitHeaders はレート制限ヘッダーを設定します
func setRateLimitHeaders(c echo.Context, config cache.RateLimitConfig, result *cache.RateLimitResult) {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(config.Requests))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	h.Set("X-RateLimit-Reset", result.ResetAt.UTC().Format(time.RFC3339))
	if !result.Allowed {
		retry := int(time.Until(result.RetryAt).Seconds())
		if retry < 1 {
			retry = 1
		}
		h.Set("Retry-After", strconv.Itoa(retry))
	}
}
