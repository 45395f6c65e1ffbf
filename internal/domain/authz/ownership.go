package authz

// Owned は単一の所有者を持つリソースです
type Owned interface {
	OwnerID() int64
}

// Visible は公開・非公開の区別を持つ所有リソースです
type Visible interface {
	Owned
	IsPublic() bool
}

// IsOwner は主体がリソースの所有者かを判定します
func IsOwner(p Principal, r Owned) bool {
	if !p.Authenticated() || r == nil {
		return false
	}
	return r.OwnerID() == p.UserID
}

// OwnerOrSuperuser は所有者またはスーパーユーザーかを判定します
// スーパーユーザーは所有者チェックを完全にバイパスします
func OwnerOrSuperuser(p Principal, r Owned) bool {
	if p.Authenticated() && p.IsSuperuser {
		return true
	}
	return IsOwner(p, r)
}
