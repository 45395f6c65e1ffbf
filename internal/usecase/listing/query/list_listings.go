package query

import (
	"context"
	"strings"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const (
	defaultListingLimit = 20
	maxListingLimit     = 100
)

// ListListingsInput は物件一覧の入力を定義します
// 数値の解析はハンドラで行い、ここでは範囲と列挙値を検証します
type ListListingsInput struct {
	PriceMin *float64
	PriceMax *float64
	Status   string
	Country  string
	City     string
	Ordering string
	Limit    int
	Offset   int
}

// ListListingsOutput は物件一覧の出力を定義します
type ListListingsOutput struct {
	Listings []*entity.Listing
	Total    int
	Limit    int
	Offset   int
}

// ListListingsQuery は物件一覧クエリです（公開）
type ListListingsQuery struct {
	listingRepo repository.ListingRepository
}

// NewListListingsQuery は新しいListListingsQueryを作成します
func NewListListingsQuery(listingRepo repository.ListingRepository) *ListListingsQuery {
	return &ListListingsQuery{listingRepo: listingRepo}
}

// Execute は絞り込みと並び替えを適用した物件一覧を返します
func (q *ListListingsQuery) Execute(ctx context.Context, input ListListingsInput) (*ListListingsOutput, error) {
	filter, err := buildFilter(input)
	if err != nil {
		return nil, err
	}

	listings, total, err := q.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &ListListingsOutput{
		Listings: listings,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}, nil
}

func buildFilter(input ListListingsInput) (repository.ListingFilter, error) {
	var details []apperror.FieldError
	filter := repository.ListingFilter{
		PriceMin: input.PriceMin,
		PriceMax: input.PriceMax,
		Limit:    input.Limit,
		Offset:   max(input.Offset, 0),
	}

	if s := strings.TrimSpace(input.Status); s != "" {
		status, err := valueobject.NewListingStatus(s)
		if err != nil {
			details = append(details, apperror.FieldError{Field: "status", Message: `Select a valid choice. ` + s + ` is not one of the available choices.`})
		} else {
			filter.Status = &status
		}
	}
	if c := strings.TrimSpace(input.Country); c != "" {
		filter.Country = &c
	}
	if c := strings.TrimSpace(input.City); c != "" {
		filter.City = &c
	}
	if o := strings.TrimSpace(input.Ordering); o != "" {
		ordering := repository.ListingOrdering(o)
		if !ordering.IsValid() {
			details = append(details, apperror.FieldError{Field: "ordering", Message: "unsupported ordering: " + o})
		} else {
			filter.OrderBy = ordering
		}
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListingLimit
	}
	if filter.Limit > maxListingLimit {
		filter.Limit = maxListingLimit
	}

	if len(details) > 0 {
		return filter, apperror.NewValidationError("invalid filter", details)
	}
	return filter, nil
}
