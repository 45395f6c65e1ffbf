package command

import (
	"context"
	"net/url"
	"strings"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// SubmitVerificationInput は本人確認書類提出の入力を定義します
type SubmitVerificationInput struct {
	UserID       int64
	DocumentType string
	DocumentURL  string
}

// SubmitVerificationCommand は本人確認書類の提出コマンドです
type SubmitVerificationCommand struct {
	profileRepo      repository.UserProfileRepository
	verificationRepo repository.UserVerificationRepository
	txManager        repository.TransactionManager
}

// NewSubmitVerificationCommand は新しいSubmitVerificationCommandを作成します
func NewSubmitVerificationCommand(
	profileRepo repository.UserProfileRepository,
	verificationRepo repository.UserVerificationRepository,
	txManager repository.TransactionManager,
) *SubmitVerificationCommand {
	return &SubmitVerificationCommand{
		profileRepo:      profileRepo,
		verificationRepo: verificationRepo,
		txManager:        txManager,
	}
}

// Execute は提出記録を作成し、プロファイルを審査待ちに戻します
func (c *SubmitVerificationCommand) Execute(ctx context.Context, input SubmitVerificationInput) (*entity.UserVerification, error) {
	var details []apperror.FieldError
	if strings.TrimSpace(input.DocumentType) == "" {
		details = append(details, apperror.FieldError{Field: "document_type", Message: "This field is required."})
	}
	if u, err := url.ParseRequestURI(input.DocumentURL); err != nil || u.Host == "" {
		details = append(details, apperror.FieldError{Field: "document_url", Message: "Enter a valid URL."})
	}
	if len(details) > 0 {
		return nil, apperror.NewValidationError("invalid verification request", details)
	}

	verification := entity.NewUserVerification(input.UserID, strings.TrimSpace(input.DocumentType), input.DocumentURL)
	err := c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		profile, err := c.profileRepo.FindByUserIDForUpdate(ctx, input.UserID)
		if err != nil {
			return err
		}
		if err := c.verificationRepo.Create(ctx, verification); err != nil {
			return err
		}
		profile.SetVerificationStatus(valueobject.VerificationPending)
		return c.profileRepo.Update(ctx, profile)
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("UserProfile")
		}
		return nil, apperror.NewInternalError(err)
	}
	return verification, nil
}
