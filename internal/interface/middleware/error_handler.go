package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// ErrorResponse はエラーレスポンス構造を定義します
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody はエラー本体を定義します
type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラーです
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := logger.WithContext(c.Request().Context())

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		// 内部エラーの場合はログ出力
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error("internal error", "error", appErr.Error())
		}
		writeError(c, appErr.HTTPStatus, ErrorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	// Echo HTTPErrorの場合（ルーティングやボディサイズ超過など）
	var he *echo.HTTPError
	if errors.As(err, &he) {
		writeError(c, he.Code, ErrorBody{
			Code:    httpErrorCode(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		})
		return
	}

	log.Error("unknown error", "error", err.Error())
	writeError(c, http.StatusInternalServerError, ErrorBody{
		Code:    string(apperror.CodeInternalError),
		Message: "internal server error",
	})
}

func writeError(c echo.Context, status int, body ErrorBody) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: body})
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(apperror.CodeInvalidRequest)
	case http.StatusUnauthorized:
		return string(apperror.CodeUnauthorized)
	case http.StatusForbidden:
		return string(apperror.CodeForbidden)
	case http.StatusNotFound:
		return string(apperror.CodeNotFound)
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusTooManyRequests:
		return string(apperror.CodeRateLimitExceeded)
	case http.StatusServiceUnavailable:
		return string(apperror.CodeServiceUnavailable)
	}
	if status >= http.StatusInternalServerError {
		return string(apperror.CodeInternalError)
	}
	return string(apperror.CodeInvalidRequest)
}
