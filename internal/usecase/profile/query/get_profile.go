package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// GetProfileInput はプロファイル取得の入力を定義します
type GetProfileInput struct {
	UserID int64
}

// GetProfileQuery はプロファイル取得クエリです
type GetProfileQuery struct {
	profileRepo repository.UserProfileRepository
}

// NewGetProfileQuery は新しいGetProfileQueryを作成します
func NewGetProfileQuery(profileRepo repository.UserProfileRepository) *GetProfileQuery {
	return &GetProfileQuery{profileRepo: profileRepo}
}

// Execute はプロファイル取得を実行します
func (q *GetProfileQuery) Execute(ctx context.Context, input GetProfileInput) (*entity.UserProfile, error) {
	profile, err := q.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("UserProfile")
		}
		return nil, apperror.NewInternalError(err)
	}
	return profile, nil
}
