package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// GetUserInput はユーザー取得の入力を定義します
type GetUserInput struct {
	UserID int64
}

// GetUserOutput はユーザー取得の出力を定義します
// Profile はプロファイル未作成の場合 nil です
type GetUserOutput struct {
	User    *entity.User
	Profile *entity.UserProfile
}

// GetUserQuery はユーザー取得クエリです
type GetUserQuery struct {
	userRepo    repository.UserRepository
	profileRepo repository.UserProfileRepository
}

// NewGetUserQuery は新しいGetUserQueryを作成します
func NewGetUserQuery(userRepo repository.UserRepository, profileRepo repository.UserProfileRepository) *GetUserQuery {
	return &GetUserQuery{userRepo: userRepo, profileRepo: profileRepo}
}

// Execute はユーザー取得を実行します
func (q *GetUserQuery) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := q.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("User")
		}
		return nil, apperror.NewInternalError(err)
	}

	profile, err := q.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, apperror.NewInternalError(err)
	}

	return &GetUserOutput{User: user, Profile: profile}, nil
}
