package command

import (
	"context"
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// LogoutInput はログアウトの入力を定義します
type LogoutInput struct {
	SessionID string
	// TokenID はアクセストークンの jti です
	TokenID     string
	TokenExpiry time.Time
}

// LogoutCommand はログアウトコマンドです
type LogoutCommand struct {
	sessionRepo repository.SessionRepository
	blacklist   repository.TokenBlacklist
}

// NewLogoutCommand は新しいLogoutCommandを作成します
func NewLogoutCommand(sessionRepo repository.SessionRepository, blacklist repository.TokenBlacklist) *LogoutCommand {
	return &LogoutCommand{
		sessionRepo: sessionRepo,
		blacklist:   blacklist,
	}
}

// Execute はアクセストークンを失効させ、リフレッシュセッションを削除します
func (c *LogoutCommand) Execute(ctx context.Context, input LogoutInput) error {
	if input.TokenID != "" {
		if err := c.blacklist.Add(ctx, input.TokenID, input.TokenExpiry); err != nil {
			return apperror.NewInternalError(err)
		}
	}
	if input.SessionID != "" {
		if err := c.sessionRepo.Delete(ctx, input.SessionID); err != nil {
			return apperror.NewInternalError(err)
		}
	}
	return nil
}
