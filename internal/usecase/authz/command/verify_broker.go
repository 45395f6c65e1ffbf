package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// VerifyBrokerInput はブローカー確認の入力を定義します
type VerifyBrokerInput struct {
	Actor  authz.Principal
	UserID int64
}

// VerifyBrokerCommand はユーザーを確認済みにするコマンドです
type VerifyBrokerCommand struct {
	userRepo repository.UserRepository
	access   service.AccessService
}

// NewVerifyBrokerCommand は新しいVerifyBrokerCommandを作成します
func NewVerifyBrokerCommand(userRepo repository.UserRepository, access service.AccessService) *VerifyBrokerCommand {
	return &VerifyBrokerCommand{userRepo: userRepo, access: access}
}

// Execute はブローカー確認を実行します
func (c *VerifyBrokerCommand) Execute(ctx context.Context, input VerifyBrokerInput) (*entity.User, error) {
	if err := c.access.Authorize(authz.PolicyStaff, input.Actor); err != nil {
		return nil, err
	}

	user, err := c.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("User")
		}
		return nil, apperror.NewInternalError(err)
	}

	user.MarkVerified()
	if err := c.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.NewInternalError(err)
	}
	return user, nil
}
