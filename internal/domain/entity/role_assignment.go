package entity

import "time"

// RoleAssignment はロール変更履歴（追記専用）です
type RoleAssignment struct {
	ID           int64
	TargetUserID int64
	AssignedByID int64
	RoleID       int64
	RoleName     string
	AssignedAt   time.Time
}

// NewRoleAssignment は新しいロール変更履歴を作成します
func NewRoleAssignment(targetUserID, assignedByID int64, role *Role) *RoleAssignment {
	return &RoleAssignment{
		TargetUserID: targetUserID,
		AssignedByID: assignedByID,
		RoleID:       role.ID,
		RoleName:     role.Name.String(),
		AssignedAt:   time.Now(),
	}
}
