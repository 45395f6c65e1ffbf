package authz

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoleName = errors.New("role name is required")
)

// RoleName はロールの識別名を表す型
// ロール間に階層はなく、比較は常に完全一致で行います
type RoleName string

const (
	RoleBuyer      RoleName = "buyer"
	RoleBroker     RoleName = "broker"
	RoleAdmin      RoleName = "admin"
	RoleSuperAdmin RoleName = "super_admin"
	RoleModerator  RoleName = "moderator"
	RoleAmbassador RoleName = "ambassador"
)

// NewRoleName は文字列からRoleNameを生成します
// ロール集合は固定ではないため、空文字以外は受け付けます（大文字小文字は区別します）
func NewRoleName(s string) (RoleName, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyRoleName
	}
	return RoleName(s), nil
}

// String は文字列を返します
func (r RoleName) String() string {
	return string(r)
}

// IsCanonical は既定の6ロールのいずれかかを判定します
func (r RoleName) IsCanonical() bool {
	for _, c := range CanonicalRoles() {
		if r == c {
			return true
		}
	}
	return false
}

// IsStaffRole は登録時にスタッフ権限を付与するロールかを判定します
func (r RoleName) IsStaffRole() bool {
	return r == RoleAdmin || r == RoleModerator
}

// CanonicalRoles は既定のロール一覧を返します
func CanonicalRoles() []RoleName {
	return []RoleName{RoleBuyer, RoleBroker, RoleAdmin, RoleSuperAdmin, RoleModerator, RoleAmbassador}
}

// roleSet はロール名の集合です
type roleSet map[RoleName]struct{}

func newRoleSet(names ...RoleName) roleSet {
	s := make(roleSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s roleSet) contains(name RoleName) bool {
	_, ok := s[name]
	return ok
}

var (
	adminOrModeratorRoles = newRoleSet(RoleSuperAdmin, RoleAdmin, RoleModerator)
	// ambassador は全てのブローカー系操作でbrokerと同等に扱います
	brokerRoles = newRoleSet(RoleBroker, RoleAmbassador)
	buyerRoles  = newRoleSet(RoleBuyer)
)
