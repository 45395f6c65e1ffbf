package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response は統一レスポンス構造を定義します
type Response struct {
	Data interface{} `json:"data"`
	Meta interface{} `json:"meta"`
}

// ListMeta はリスト取得時のメタ情報を定義します
type ListMeta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// MessageResponse はメッセージのみのレスポンスです
type MessageResponse struct {
	Message string `json:"message"`
}

// OK は成功レスポンスを返します
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: nil,
	})
}

// Created は作成成功レスポンスを返します
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Data: data,
		Meta: nil,
	})
}

// NoContent はコンテンツなしレスポンスを返します
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// List はリスト取得レスポンスを返します
func List(c echo.Context, data interface{}, total, limit, offset int) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// Message はメッセージのみのレスポンスを返します
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}
