package valueobject

import "errors"

var ErrInvalidVerificationStatus = errors.New("invalid verification status")

// VerificationStatus はプロファイルの本人確認状態です
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// NewVerificationStatus は文字列からVerificationStatusを生成します
func NewVerificationStatus(s string) (VerificationStatus, error) {
	v := VerificationStatus(s)
	if !v.IsValid() {
		return "", ErrInvalidVerificationStatus
	}
	return v, nil
}

// IsValid は状態が有効かを判定します
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

// IsDecision は審査結果（verified / rejected）かを判定します
func (s VerificationStatus) IsDecision() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// String は文字列を返します
func (s VerificationStatus) String() string {
	return string(s)
}
