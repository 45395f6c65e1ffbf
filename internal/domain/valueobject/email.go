package valueobject

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmailEmpty   = errors.New("email cannot be empty")
	ErrEmailTooLong = errors.New("email must be at most 255 characters")
	ErrEmailInvalid = errors.New("enter a valid email address")
)

// Email はメールアドレスを表す値オブジェクトです
type Email struct {
	value string
}

// NewEmail は新しいEmailを作成します
// 前後の空白を除去し小文字に正規化します
func NewEmail(value string) (Email, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if value == "" {
		return Email{}, ErrEmailEmpty
	}
	if len(value) > 255 {
		return Email{}, ErrEmailTooLong
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return Email{}, ErrEmailInvalid
	}

	return Email{value: value}, nil
}

// String はメールアドレスを文字列で返します
func (e Email) String() string {
	return e.value
}

// Equals は2つのEmailが等しいかを判定します
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// ReconstructEmail は永続化済みの値からEmailを復元します（検証しません）
func ReconstructEmail(value string) Email {
	return Email{value: value}
}
