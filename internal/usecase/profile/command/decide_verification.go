package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// DecideVerificationInput は審査結果登録の入力を定義します
type DecideVerificationInput struct {
	Actor  authz.Principal
	UserID int64
	Result string
}

// DecideVerificationOutput は審査結果登録の出力を定義します
type DecideVerificationOutput struct {
	Verification *entity.UserVerification
	Profile      *entity.UserProfile
}

// DecideVerificationCommand は本人確認の審査結果を記録するコマンドです
type DecideVerificationCommand struct {
	profileRepo      repository.UserProfileRepository
	verificationRepo repository.UserVerificationRepository
	txManager        repository.TransactionManager
	access           service.AccessService
}

// NewDecideVerificationCommand は新しいDecideVerificationCommandを作成します
func NewDecideVerificationCommand(
	profileRepo repository.UserProfileRepository,
	verificationRepo repository.UserVerificationRepository,
	txManager repository.TransactionManager,
	access service.AccessService,
) *DecideVerificationCommand {
	return &DecideVerificationCommand{
		profileRepo:      profileRepo,
		verificationRepo: verificationRepo,
		txManager:        txManager,
		access:           access,
	}
}

// Execute は最新の審査待ち提出に結果を記録し、プロファイルの状態を同一トランザクションで更新します
func (c *DecideVerificationCommand) Execute(ctx context.Context, input DecideVerificationInput) (*DecideVerificationOutput, error) {
	if err := c.access.Authorize(authz.PolicyAdminOrModerator, input.Actor); err != nil {
		return nil, err
	}

	result, err := valueobject.NewVerificationStatus(input.Result)
	if err != nil || !result.IsDecision() {
		return nil, apperror.NewFieldError("result", `"`+input.Result+`" is not a valid choice.`)
	}

	out := &DecideVerificationOutput{}
	err = c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		verification, err := c.verificationRepo.FindLatestPendingByUserID(ctx, input.UserID)
		if err != nil {
			return err
		}
		profile, err := c.profileRepo.FindByUserIDForUpdate(ctx, input.UserID)
		if err != nil {
			return err
		}

		verification.Decide(result, input.Actor.UserID)
		if err := c.verificationRepo.Update(ctx, verification); err != nil {
			return err
		}
		profile.SetVerificationStatus(result)
		if err := c.profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		out.Verification = verification
		out.Profile = profile
		return nil
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewInternalError(err)
	}
	return out, nil
}
