package entity

import (
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

// UserVerification は本人確認書類の提出記録です
type UserVerification struct {
	ID           int64
	UserID       int64
	DocumentType string
	DocumentURL  string
	Result       valueobject.VerificationStatus
	ReviewedByID *int64
	VerifiedAt   *time.Time
	CreatedAt    time.Time
}

// NewUserVerification は審査待ちの提出記録を作成します
func NewUserVerification(userID int64, documentType, documentURL string) *UserVerification {
	return &UserVerification{
		UserID:       userID,
		DocumentType: documentType,
		DocumentURL:  documentURL,
		Result:       valueobject.VerificationPending,
		CreatedAt:    time.Now(),
	}
}

// IsPending は審査待ちかを判定します
func (v *UserVerification) IsPending() bool {
	return v.Result == valueobject.VerificationPending
}

// Decide は審査結果を記録します
func (v *UserVerification) Decide(result valueobject.VerificationStatus, reviewerID int64) {
	now := time.Now()
	v.Result = result
	v.ReviewedByID = &reviewerID
	v.VerifiedAt = &now
}
