package entity

import (
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

// User はユーザー（認証主体）エンティティを定義します
type User struct {
	ID           int64
	Email        valueobject.Email
	PasswordHash string
	IsSuperuser  bool
	IsStaff      bool
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser は新しいユーザーを作成します
// IDは永続化時に採番されます
func NewUser(email valueobject.Email, password valueobject.Password, isStaff bool) *User {
	now := time.Now()
	return &User{
		Email:        email,
		PasswordHash: password.Hash(),
		IsStaff:      isStaff,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Password はパスワード値オブジェクトを返します
func (u *User) Password() valueobject.Password {
	return valueobject.PasswordFromHash(u.PasswordHash)
}

// CanLogin はユーザーがログイン可能かを判定します
func (u *User) CanLogin() bool {
	return u.IsActive
}

// ChangePassword はパスワードを変更します
func (u *User) ChangePassword(password valueobject.Password) {
	u.PasswordHash = password.Hash()
	u.UpdatedAt = time.Now()
}

// MarkVerified はブローカーとして確認済みにします
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.UpdatedAt = time.Now()
}

// Principal はプロファイルを付与した認可主体に変換します
// profile が nil の場合、プロファイル未作成として扱います
func (u *User) Principal(profile *UserProfile) authz.Principal {
	p := authz.Principal{
		UserID:      u.ID,
		Email:       u.Email.String(),
		IsSuperuser: u.IsSuperuser,
		IsStaff:     u.IsStaff,
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
	}
	if profile != nil {
		ref := &authz.ProfileRef{}
		if profile.Role != nil {
			name := profile.Role.Name
			ref.Role = &name
		}
		p.Profile = ref
	}
	return p
}
