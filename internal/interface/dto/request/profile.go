package request

import "github.com/mrewrin/LeadTransfer/internal/domain/entity"

// UpdateProfileRequest はプロファイル更新リクエスト
// role と verification_status は読み取り専用のため受け付けません
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Country   *string `json:"country" validate:"omitempty,max=100"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// ToPersonalInfo はドメインの個人情報に変換します
func (r *UpdateProfileRequest) ToPersonalInfo() entity.PersonalInfo {
	return entity.PersonalInfo{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Country:   r.Country,
		City:      r.City,
		AvatarURL: r.AvatarURL,
	}
}

// SubmitVerificationRequest は本人確認書類の提出リクエスト
type SubmitVerificationRequest struct {
	DocumentType string `json:"document_type" validate:"required,max=50"`
	DocumentURL  string `json:"document_url" validate:"required,url"`
}

// VerificationDecisionRequest は本人確認の審査結果リクエスト
type VerificationDecisionRequest struct {
	Result string `json:"result" validate:"required,oneof=verified rejected"`
}
