package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// MsgOldPasswordIncorrect は現在のパスワード不一致時のメッセージです
const MsgOldPasswordIncorrect = "The old password is incorrect."

// ChangePasswordInput はパスワード変更の入力を定義します
type ChangePasswordInput struct {
	UserID      int64
	OldPassword string
	NewPassword string
}

// ChangePasswordCommand はパスワード変更コマンドです
type ChangePasswordCommand struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewChangePasswordCommand は新しいChangePasswordCommandを作成します
func NewChangePasswordCommand(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *ChangePasswordCommand {
	return &ChangePasswordCommand{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Execute はパスワードを変更し、既存のリフレッシュセッションをすべて失効させます
func (c *ChangePasswordCommand) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := c.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFoundError("User")
		}
		return apperror.NewInternalError(err)
	}

	if !user.Password().Verify(input.OldPassword) {
		return apperror.NewFieldError("old_password", MsgOldPasswordIncorrect)
	}

	password, err := valueobject.NewPassword(input.NewPassword)
	if err != nil {
		return apperror.NewFieldError("new_password", err.Error())
	}

	user.ChangePassword(password)
	if err := c.userRepo.Update(ctx, user); err != nil {
		return apperror.NewInternalError(err)
	}

	if err := c.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return apperror.NewInternalError(err)
	}
	return nil
}
