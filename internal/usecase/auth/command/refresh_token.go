package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/pkg/jwt"
)

// RefreshTokenInput はトークン更新の入力を定義します
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput はトークン更新の出力を定義します
type RefreshTokenOutput struct {
	AccessToken string
	ExpiresIn   int
}

// RefreshTokenCommand はアクセストークン再発行コマンドです
// リフレッシュトークン自体はローテーションしません
type RefreshTokenCommand struct {
	userRepo    repository.UserRepository
	profileRepo repository.UserProfileRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
}

// NewRefreshTokenCommand は新しいRefreshTokenCommandを作成します
func NewRefreshTokenCommand(
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
) *RefreshTokenCommand {
	return &RefreshTokenCommand{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Execute はアクセストークンを再発行します
// ロールは最新のプロファイルから読み直します
func (c *RefreshTokenCommand) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := c.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, apperror.NewUnauthorizedError("token is invalid or expired")
	}

	session, err := c.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorizedError("token is invalid or expired")
		}
		return nil, apperror.NewInternalError(err)
	}
	if session.UserID != claims.UserID || session.IsExpired() {
		return nil, apperror.NewUnauthorizedError("token is invalid or expired")
	}

	user, err := c.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorizedError(MsgInvalidCredentials)
		}
		return nil, apperror.NewInternalError(err)
	}
	if !user.CanLogin() {
		return nil, apperror.NewUnauthorizedError(MsgInvalidCredentials)
	}

	role, err := currentRole(ctx, c.profileRepo, user.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := c.jwtService.GenerateAccessToken(jwt.Subject{
		UserID:    user.ID,
		Email:     user.Email.String(),
		Role:      role,
		SessionID: session.ID,
	})
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	session.UpdateLastUsed()
	if err := c.sessionRepo.Save(ctx, session); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &RefreshTokenOutput{
		AccessToken: accessToken,
		ExpiresIn:   int(c.jwtService.GetAccessTokenExpiry().Seconds()),
	}, nil
}
