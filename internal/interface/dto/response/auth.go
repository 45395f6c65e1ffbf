package response

import (
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// TokenPairResponse はログインレスポンス
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AccessTokenResponse はトークンリフレッシュレスポンス
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// UserResponse はユーザー情報レスポンス
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	IsStaff     bool      `json:"is_staff"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	Role        *string   `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserResponse はエンティティをレスポンスに変換します
func ToUserResponse(user *entity.User, profile *entity.UserProfile) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email.String(),
		IsSuperuser: user.IsSuperuser,
		IsStaff:     user.IsStaff,
		IsActive:    user.IsActive,
		IsVerified:  user.IsVerified,
		Role:        profileRole(profile),
		CreatedAt:   user.CreatedAt,
	}
}

// PrincipalResponse は認可主体のレスポンス
type PrincipalResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	IsSuperuser bool    `json:"is_superuser"`
	IsStaff     bool    `json:"is_staff"`
	IsVerified  bool    `json:"is_verified"`
	Role        *string `json:"role"`
}

// ToPrincipalResponse は認可主体をレスポンスに変換します
func ToPrincipalResponse(p authz.Principal) *PrincipalResponse {
	return &PrincipalResponse{
		ID:          p.UserID,
		Email:       p.Email,
		IsSuperuser: p.IsSuperuser,
		IsStaff:     p.IsStaff,
		IsVerified:  p.IsVerified,
		Role:        p.RoleString(),
	}
}

func profileRole(profile *entity.UserProfile) *string {
	if profile == nil || profile.Role == nil {
		return nil
	}
	s := profile.Role.Name.String()
	return &s
}
