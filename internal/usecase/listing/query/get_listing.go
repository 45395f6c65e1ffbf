package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// GetListingQuery は物件詳細クエリです（公開）
type GetListingQuery struct {
	listingRepo repository.ListingRepository
}

// NewGetListingQuery は新しいGetListingQueryを作成します
func NewGetListingQuery(listingRepo repository.ListingRepository) *GetListingQuery {
	return &GetListingQuery{listingRepo: listingRepo}
}

// Execute は物件を取得します
func (q *GetListingQuery) Execute(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := q.listingRepo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewInternalError(err)
	}
	return listing, nil
}
