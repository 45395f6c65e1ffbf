package di

import (
	authcmd "github.com/mrewrin/LeadTransfer/internal/usecase/auth/command"
	authqry "github.com/mrewrin/LeadTransfer/internal/usecase/auth/query"
)

// AuthUseCases はAuth関連のUseCaseを保持します
type AuthUseCases struct {
	// Commands
	Register       *authcmd.RegisterCommand
	Login          *authcmd.LoginCommand
	RefreshToken   *authcmd.RefreshTokenCommand
	Logout         *authcmd.LogoutCommand
	ChangePassword *authcmd.ChangePasswordCommand

	// Queries
	GetUser *authqry.GetUserQuery
}

// NewAuthUseCases は新しいAuthUseCasesを作成します
func NewAuthUseCases(c *Container) *AuthUseCases {
	return &AuthUseCases{
		// Commands
		Register: authcmd.NewRegisterCommand(
			c.UserRepo,
			c.UserProfileRepo,
			c.RoleRepo,
			c.TxManager,
		),
		Login: authcmd.NewLoginCommand(
			c.UserRepo,
			c.UserProfileRepo,
			c.SessionRepo,
			c.JWTService,
		),
		RefreshToken: authcmd.NewRefreshTokenCommand(
			c.UserRepo,
			c.UserProfileRepo,
			c.SessionRepo,
			c.JWTService,
		),
		Logout: authcmd.NewLogoutCommand(
			c.SessionRepo,
			c.JWTBlacklist,
		),
		ChangePassword: authcmd.NewChangePasswordCommand(
			c.UserRepo,
			c.SessionRepo,
		),

		// Queries
		GetUser: authqry.NewGetUserQuery(c.UserRepo, c.UserProfileRepo),
	}
}
