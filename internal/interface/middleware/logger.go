package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// Logger はリクエストロギングミドルウェアを返します
// ステータスコードに応じてログレベルを切り替えます
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// ステータスを確定させるためエラーハンドラーを先に呼び出す
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"route", c.Path(),
				"status", status,
				"latency_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
				"user_agent", c.Request().UserAgent(),
				"bytes_in", c.Request().ContentLength,
				"bytes_out", c.Response().Size,
			}
			if uid := GetUserID(c); uid != 0 {
				attrs = append(attrs, "user_id", uid)
			}

			logger.WithContext(c.Request().Context()).Log(context.Background(), level, "request", attrs...)
			return nil
		}
	}
}
