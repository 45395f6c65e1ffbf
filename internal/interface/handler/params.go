package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const msgInvalidInteger = "A valid integer is required."

// bindAndValidate はリクエストボディをバインドして検証します
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	return c.Validate(req)
}

// pathID はパスパラメータを正のIDとして解析します
// 数値でない場合はルートが一致しないものとして 404 を返します
func pathID(c echo.Context, name, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError(resource)
	}
	return id, nil
}

// queryInt は整数のクエリパラメータを解析します（未指定は 0）
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewFieldError(name, msgInvalidInteger)
	}
	return v, nil
}

// queryFloat は数値のクエリパラメータを解析します（未指定は nil）
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.NewFieldError(name, "A valid number is required.")
	}
	return &v, nil
}

// pagination は limit と offset を解析します
func pagination(c echo.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(c, "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
