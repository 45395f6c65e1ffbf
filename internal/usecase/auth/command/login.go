package command

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/pkg/jwt"
)

// MsgInvalidCredentials は認証失敗時のメッセージです
// 未登録・パスワード不一致・無効化済みを区別しません
const MsgInvalidCredentials = "No active account found with the given credentials"

// LoginInput はログインの入力を定義します
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginOutput はログインの出力を定義します
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // seconds
	SessionID    string
	User         *entity.User
	Role         *string
}

// LoginCommand はログインコマンドです
type LoginCommand struct {
	userRepo    repository.UserRepository
	profileRepo repository.UserProfileRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
}

// NewLoginCommand は新しいLoginCommandを作成します
func NewLoginCommand(
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
) *LoginCommand {
	return &LoginCommand{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Execute はログインを実行します
func (c *LoginCommand) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	// 1. メールアドレスでユーザーを検索
	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, apperror.NewUnauthorizedError(MsgInvalidCredentials)
	}

	user, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorizedError(MsgInvalidCredentials)
		}
		return nil, apperror.NewInternalError(err)
	}

	// 2. パスワードとアカウント状態の検証
	if !user.Password().Verify(input.Password) || !user.CanLogin() {
		return nil, apperror.NewUnauthorizedError(MsgInvalidCredentials)
	}

	// 3. トークンに載せるロールを取得
	role, err := currentRole(ctx, c.profileRepo, user.ID)
	if err != nil {
		return nil, err
	}

	// 4. 上限を超えるセッションは古いものから削除
	if err := c.enforceSessionLimit(ctx, user.ID); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	// 5. セッションとトークンを発行
	session := entity.NewSession(uuid.NewString(), user.ID, input.UserAgent, input.IPAddress, c.jwtService.GetRefreshTokenExpiry())
	accessToken, refreshToken, err := c.jwtService.GenerateTokenPair(jwt.Subject{
		UserID:    user.ID,
		Email:     user.Email.String(),
		Role:      role,
		SessionID: session.ID,
	})
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	if err := c.sessionRepo.Save(ctx, session); err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(c.jwtService.GetAccessTokenExpiry().Seconds()),
		SessionID:    session.ID,
		User:         user,
		Role:         role,
	}, nil
}

func (c *LoginCommand) enforceSessionLimit(ctx context.Context, userID int64) error {
	count, err := c.sessionRepo.CountByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if count < entity.MaxActiveSessionsPerUser {
		return nil
	}

	sessions, err := c.sessionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	excess := len(sessions) - entity.MaxActiveSessionsPerUser + 1
	for i := 0; i < excess; i++ {
		if err := c.sessionRepo.Delete(ctx, sessions[i].ID); err != nil {
			return err
		}
	}
	return nil
}

// currentRole はユーザーの現在のロール名を返します
// プロファイルまたはロールが無い場合は nil です
func currentRole(ctx context.Context, profileRepo repository.UserProfileRepository, userID int64) (*string, error) {
	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, apperror.NewInternalError(err)
	}
	if profile.Role == nil {
		return nil, nil
	}
	name := profile.Role.Name.String()
	return &name, nil
}
