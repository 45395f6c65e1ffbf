package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// AssignRoleResponse はロール割り当てレスポンス
type AssignRoleResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
}

// RoleResponse はロール情報レスポンス
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToRoleListResponse はロール一覧をレスポンスに変換します
func ToRoleListResponse(roles []*entity.Role) []RoleResponse {
	return lo.Map(roles, func(r *entity.Role, _ int) RoleResponse {
		return RoleResponse{ID: r.ID, Name: r.Name.String()}
	})
}

// RoleAssignmentResponse はロール変更履歴レスポンス
type RoleAssignmentResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	AssignedByID int64     `json:"assigned_by"`
	Role         string    `json:"role"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// ToRoleAssignmentListResponse はロール変更履歴をレスポンスに変換します
func ToRoleAssignmentListResponse(items []*entity.RoleAssignment) []RoleAssignmentResponse {
	return lo.Map(items, func(a *entity.RoleAssignment, _ int) RoleAssignmentResponse {
		return RoleAssignmentResponse{
			ID:           a.ID,
			UserID:       a.TargetUserID,
			AssignedByID: a.AssignedByID,
			Role:         a.RoleName,
			AssignedAt:   a.AssignedAt,
		}
	})
}
