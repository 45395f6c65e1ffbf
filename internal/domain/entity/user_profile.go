package entity

import (
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

// UserProfile はユーザープロファイルエンティティを定義します
// Role は未割り当ての場合 nil です
type UserProfile struct {
	ID                 int64
	UserID             int64
	FirstName          string
	LastName           string
	Phone              string
	Country            string
	City               string
	AvatarURL          string
	VerificationStatus valueobject.VerificationStatus
	Role               *Role
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUserProfile は新しいUserProfileを作成します
func NewUserProfile(userID int64, role *Role) *UserProfile {
	now := time.Now()
	return &UserProfile{
		UserID:             userID,
		VerificationStatus: valueobject.VerificationPending,
		Role:               role,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// RoleID はロールIDを返します（未割り当ての場合は nil）
func (p *UserProfile) RoleID() *int64 {
	if p.Role == nil {
		return nil
	}
	id := p.Role.ID
	return &id
}

// AssignRole はロールを上書きします
// 主体は同時に1つのロールしか保持しません
func (p *UserProfile) AssignRole(role *Role) {
	p.Role = role
	p.UpdatedAt = time.Now()
}

// PersonalInfo はプロファイルの個人情報です
type PersonalInfo struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Country   *string
	City      *string
	AvatarURL *string
}

// UpdatePersonalInfo は指定された項目のみ更新します
func (p *UserProfile) UpdatePersonalInfo(info PersonalInfo) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.FirstName, info.FirstName)
	set(&p.LastName, info.LastName)
	set(&p.Phone, info.Phone)
	set(&p.Country, info.Country)
	set(&p.City, info.City)
	set(&p.AvatarURL, info.AvatarURL)
	p.UpdatedAt = time.Now()
}

// SetVerificationStatus は本人確認状態を更新します
func (p *UserProfile) SetVerificationStatus(status valueobject.VerificationStatus) {
	p.VerificationStatus = status
	p.UpdatedAt = time.Now()
}
