package di

import (
	profilecmd "github.com/mrewrin/LeadTransfer/internal/usecase/profile/command"
	profileqry "github.com/mrewrin/LeadTransfer/internal/usecase/profile/query"
)

// ProfileUseCases はProfile関連のUseCaseを保持します
type ProfileUseCases struct {
	// Commands
	UpdateProfile      *profilecmd.UpdateProfileCommand
	SubmitVerification *profilecmd.SubmitVerificationCommand
	DecideVerification *profilecmd.DecideVerificationCommand

	// Queries
	GetProfile *profileqry.GetProfileQuery
}

// NewProfileUseCases は新しいProfileUseCasesを作成します
func NewProfileUseCases(c *Container) *ProfileUseCases {
	return &ProfileUseCases{
		UpdateProfile: profilecmd.NewUpdateProfileCommand(c.UserProfileRepo, c.UserRepo),
		SubmitVerification: profilecmd.NewSubmitVerificationCommand(
			c.UserProfileRepo,
			c.VerificationRepo,
			c.TxManager,
		),
		DecideVerification: profilecmd.NewDecideVerificationCommand(
			c.UserProfileRepo,
			c.VerificationRepo,
			c.TxManager,
			c.AccessService,
		),

		GetProfile: profileqry.NewGetProfileQuery(c.UserProfileRepo),
	}
}
