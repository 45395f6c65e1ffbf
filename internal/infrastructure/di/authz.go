package di

import (
	authzcmd "github.com/mrewrin/LeadTransfer/internal/usecase/authz/command"
	authzqry "github.com/mrewrin/LeadTransfer/internal/usecase/authz/query"
)

// AuthzUseCases はロール管理関連のUseCaseを保持します
type AuthzUseCases struct {
	// Commands
	AssignRole   *authzcmd.AssignRoleCommand
	VerifyBroker *authzcmd.VerifyBrokerCommand

	// Queries
	ListRoles       *authzqry.ListRolesQuery
	ListRoleHistory *authzqry.ListRoleHistoryQuery
}

// NewAuthzUseCases は新しいAuthzUseCasesを作成します
func NewAuthzUseCases(c *Container) *AuthzUseCases {
	return &AuthzUseCases{
		AssignRole: authzcmd.NewAssignRoleCommand(
			c.RoleRepo,
			c.UserProfileRepo,
			c.RoleHistoryRepo,
			c.SessionRepo,
			c.TxManager,
			c.AccessService,
			c.Metrics,
		),
		VerifyBroker: authzcmd.NewVerifyBrokerCommand(c.UserRepo, c.AccessService),

		ListRoles:       authzqry.NewListRolesQuery(c.RoleRepo),
		ListRoleHistory: authzqry.NewListRoleHistoryQuery(c.RoleHistoryRepo, c.AccessService),
	}
}
