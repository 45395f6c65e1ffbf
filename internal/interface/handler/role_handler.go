package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/request"
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/response"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/presenter"
	authzcmd "github.com/mrewrin/LeadTransfer/internal/usecase/authz/command"
	authzqry "github.com/mrewrin/LeadTransfer/internal/usecase/authz/query"
)

// RoleHandler はロールと管理系のHTTPハンドラーです
type RoleHandler struct {
	assignRoleCommand   *authzcmd.AssignRoleCommand
	verifyBrokerCommand *authzcmd.VerifyBrokerCommand

	listRolesQuery       *authzqry.ListRolesQuery
	listRoleHistoryQuery *authzqry.ListRoleHistoryQuery
}

// NewRoleHandler は新しいRoleHandlerを作成します
func NewRoleHandler(
	assignRoleCommand *authzcmd.AssignRoleCommand,
	verifyBrokerCommand *authzcmd.VerifyBrokerCommand,
	listRolesQuery *authzqry.ListRolesQuery,
	listRoleHistoryQuery *authzqry.ListRoleHistoryQuery,
) *RoleHandler {
	return &RoleHandler{
		assignRoleCommand:    assignRoleCommand,
		verifyBrokerCommand:  verifyBrokerCommand,
		listRolesQuery:       listRolesQuery,
		listRoleHistoryQuery: listRoleHistoryQuery,
	}
}

// AssignRole は他ユーザーにロールを割り当てます
// POST /api/auth/assign-role/
func (h *RoleHandler) AssignRole(c echo.Context) error {
	var req request.AssignRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.assignRoleCommand.Execute(c.Request().Context(), authzcmd.AssignRoleInput{
		Actor:        middleware.GetPrincipal(c),
		TargetUserID: req.UserID,
		RoleName:     req.Role,
	})
	if err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionRoleAssign, entity.AuditResourceUser, &req.UserID, map[string]any{
		"role": output.Assignment.RoleName,
	})

	return c.JSON(http.StatusOK, response.AssignRoleResponse{
		Message: "Role assigned successfully!",
		UserID:  req.UserID,
		Role:    output.Assignment.RoleName,
	})
}

// ListRoles はロール一覧を返します
// GET /api/auth/roles/
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.listRolesQuery.Execute(c.Request().Context())
	if err != nil {
		return err
	}
	return presenter.OK(c, response.ToRoleListResponse(roles))
}

// RoleHistory はユーザーのロール変更履歴を返します
// GET /api/auth/users/:id/role-history/
func (h *RoleHandler) RoleHistory(c echo.Context) error {
	userID, err := pathID(c, "id", "User")
	if err != nil {
		return err
	}
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	output, err := h.listRoleHistoryQuery.Execute(c.Request().Context(), authzqry.ListRoleHistoryInput{
		Actor:  middleware.GetPrincipal(c),
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return presenter.List(c, response.ToRoleAssignmentListResponse(output.Assignments), output.Total, output.Limit, output.Offset)
}

// VerifyBroker はブローカーを確認済みにします
// POST /api/auth/verify-broker/:id/
func (h *RoleHandler) VerifyBroker(c echo.Context) error {
	userID, err := pathID(c, "id", "User")
	if err != nil {
		return err
	}

	if _, err := h.verifyBrokerCommand.Execute(c.Request().Context(), authzcmd.VerifyBrokerInput{
		Actor:  middleware.GetPrincipal(c),
		UserID: userID,
	}); err != nil {
		return err
	}

	middleware.AuditHelper(c, entity.AuditActionBrokerVerify, entity.AuditResourceUser, &userID, nil)

	return presenter.Message(c, http.StatusOK, "Broker verified successfully!")
}

// AdminOrModerator は管理者・モデレーター向けの確認用エンドポイントです
// GET /api/auth/admin-or-moderator/
func (h *RoleHandler) AdminOrModerator(c echo.Context) error {
	return presenter.Message(c, http.StatusOK, "Welcome, Admin or Moderator!")
}

// BrokerOrAmbassador はブローカー・アンバサダー向けの確認用エンドポイントです
// GET /api/auth/broker-or-ambassador/
func (h *RoleHandler) BrokerOrAmbassador(c echo.Context) error {
	return presenter.Message(c, http.StatusOK, "Welcome, Broker or Ambassador!")
}
