package response

import (
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// ProfileResponse はプロファイル情報レスポンス
type ProfileResponse struct {
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Phone              string    `json:"phone"`
	Country            string    `json:"country"`
	City               string    `json:"city"`
	AvatarURL          string    `json:"avatar_url"`
	VerificationStatus string    `json:"verification_status"`
	Role               *string   `json:"role"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToProfileResponse はエンティティをレスポンスに変換します
func ToProfileResponse(profile *entity.UserProfile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		Phone:              profile.Phone,
		Country:            profile.Country,
		City:               profile.City,
		AvatarURL:          profile.AvatarURL,
		VerificationStatus: profile.VerificationStatus.String(),
		Role:               profileRole(profile),
		UpdatedAt:          profile.UpdatedAt,
	}
}

// VerificationResponse は本人確認の提出記録レスポンス
type VerificationResponse struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	DocumentType string     `json:"document_type"`
	DocumentURL  string     `json:"document_url"`
	Result       string     `json:"result"`
	ReviewedByID *int64     `json:"reviewed_by"`
	VerifiedAt   *time.Time `json:"verified_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToVerificationResponse はエンティティをレスポンスに変換します
func ToVerificationResponse(v *entity.UserVerification) *VerificationResponse {
	if v == nil {
		return nil
	}
	return &VerificationResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		DocumentType: v.DocumentType,
		DocumentURL:  v.DocumentURL,
		Result:       v.Result.String(),
		ReviewedByID: v.ReviewedByID,
		VerifiedAt:   v.VerifiedAt,
		CreatedAt:    v.CreatedAt,
	}
}

// VerificationDecisionResponse は本人確認の審査結果レスポンス
type VerificationDecisionResponse struct {
	Verification *VerificationResponse `json:"verification"`
	Profile      *ProfileResponse      `json:"profile"`
}
