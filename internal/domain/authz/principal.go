package authz

// Principal は認可判定の対象となる主体です
// ゼロ値は匿名ユーザーを表します
type Principal struct {
	UserID      int64
	Email       string
	IsSuperuser bool
	IsStaff     bool
	IsActive    bool
	IsVerified  bool
	// Profile はプロファイル未作成の場合 nil です
	Profile *ProfileRef
}

// ProfileRef は認可判定に必要なプロファイル情報です
type ProfileRef struct {
	// Role はロール未割り当ての場合 nil です
	Role *RoleName
}

// Anonymous は匿名の主体を返します
func Anonymous() Principal {
	return Principal{}
}

// Authenticated は認証済みかを判定します
func (p Principal) Authenticated() bool {
	return p.UserID != 0
}

// Role はプロファイルに割り当てられたロールを返します
func (p Principal) Role() (RoleName, bool) {
	if p.Profile == nil || p.Profile.Role == nil {
		return "", false
	}
	return *p.Profile.Role, true
}

// RoleString はロール名を返します（未割り当ての場合は nil）
func (p Principal) RoleString() *string {
	role, ok := p.Role()
	if !ok {
		return nil
	}
	s := role.String()
	return &s
}

// hasRoleIn は認証済みかつロールが集合に含まれるかを判定します
// プロファイルやロールが無い場合は false を返します
func (p Principal) hasRoleIn(set roleSet) bool {
	if !p.Authenticated() {
		return false
	}
	role, ok := p.Role()
	if !ok {
		return false
	}
	return set.contains(role)
}
