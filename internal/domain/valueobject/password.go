package valueobject

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcryptは72バイトを超える入力を扱えません
	maxPasswordLength = 72
)

// PasswordHashCost はbcryptのコストです（テストでは下げて使用します）
var PasswordHashCost = 12

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	ErrPasswordWeak     = errors.New("password must contain at least 2 of: uppercase, lowercase, digit")
)

// Password はパスワードを表す値オブジェクトです
type Password struct {
	hash string
}

// NewPassword は平文から新しいPasswordを作成します
func NewPassword(plaintext string) (Password, error) {
	if err := ValidatePasswordPolicy(plaintext); err != nil {
		return Password{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return Password{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return Password{hash: string(hash)}, nil
}

// PasswordFromHash はハッシュからPasswordを作成します（DBからの復元用）
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Hash はパスワードハッシュを返します
func (p Password) Hash() string {
	return p.hash
}

// Verify は平文パスワードがハッシュと一致するか検証します
func (p Password) Verify(plaintext string) bool {
	if p.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plaintext)) == nil
}

// ValidatePasswordPolicy は長さと強度を検証します
// 英大文字、英小文字、数字のうち2種以上を含む必要があります
func ValidatePasswordPolicy(plaintext string) error {
	if len(plaintext) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(plaintext) > maxPasswordLength {
		return ErrPasswordTooLong
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range plaintext {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	count := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit} {
		if ok {
			count++
		}
	}
	if count < 2 {
		return ErrPasswordWeak
	}
	return nil
}
