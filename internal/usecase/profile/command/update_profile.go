package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// UpdateProfileInput はプロファイル更新の入力を定義します
// ロールと本人確認状態はここでは変更できません
type UpdateProfileInput struct {
	UserID int64
	Info   entity.PersonalInfo
}

// UpdateProfileOutput はプロファイル更新の出力を定義します
type UpdateProfileOutput struct {
	Profile *entity.UserProfile
}

// UpdateProfileCommand は自分のプロファイル更新コマンドです
type UpdateProfileCommand struct {
	profileRepo repository.UserProfileRepository
	userRepo    repository.UserRepository
}

// NewUpdateProfileCommand は新しいUpdateProfileCommandを作成します
func NewUpdateProfileCommand(
	profileRepo repository.UserProfileRepository,
	userRepo repository.UserRepository,
) *UpdateProfileCommand {
	return &UpdateProfileCommand{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Execute はプロファイル更新を実行します
func (c *UpdateProfileCommand) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	// ユーザーの存在確認
	if _, err := c.userRepo.FindByID(ctx, input.UserID); err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("User")
		}
		return nil, apperror.NewInternalError(err)
	}

	// 既存プロファイルを取得（なければロール未割り当てで作成）
	create := false
	profile, err := c.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return nil, apperror.NewInternalError(err)
		}
		profile = entity.NewUserProfile(input.UserID, nil)
		create = true
	}

	profile.UpdatePersonalInfo(input.Info)

	if create {
		err = c.profileRepo.Create(ctx, profile)
	} else {
		err = c.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewInternalError(err)
	}

	return &UpdateProfileOutput{Profile: profile}, nil
}
