package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

// ListingOrdering は物件一覧の並び順です
type ListingOrdering string

const (
	OrderByPriceAsc      ListingOrdering = "price"
	OrderByPriceDesc     ListingOrdering = "-price"
	OrderByCreatedAtAsc  ListingOrdering = "created_at"
	OrderByCreatedAtDesc ListingOrdering = "-created_at"
)

// IsValid は並び順が有効かを判定します
func (o ListingOrdering) IsValid() bool {
	switch o {
	case OrderByPriceAsc, OrderByPriceDesc, OrderByCreatedAtAsc, OrderByCreatedAtDesc:
		return true
	}
	return false
}

// ListingFilter は物件一覧の絞り込み条件です
type ListingFilter struct {
	PriceMin *float64
	PriceMax *float64
	Status   *valueobject.ListingStatus
	// Country は大文字小文字を区別しない部分一致です
	Country *string
	City    *string
	OrderBy ListingOrdering
	Limit   int
	Offset  int
}

// ListingRepository は物件リポジトリインターフェースを定義します
type ListingRepository interface {
	// Create は物件を作成し、採番されたIDを設定します
	Create(ctx context.Context, listing *entity.Listing) error

	// Update は物件を更新します
	Update(ctx context.Context, listing *entity.Listing) error

	// Delete は物件を削除します
	Delete(ctx context.Context, id int64) error

	// FindByID はIDで物件を検索します
	FindByID(ctx context.Context, id int64) (*entity.Listing, error)

	// List は条件に一致する物件と総件数を返します
	List(ctx context.Context, filter ListingFilter) ([]*entity.Listing, int, error)

	// ExistsByAddress は建物名の無い物件で同一住所が存在するかを確認します
	// excludeID が 0 でない場合、そのIDは除外されます
	ExistsByAddress(ctx context.Context, key entity.AddressKey, excludeID int64) (bool, error)

	// ExistingIDs は ids のうち存在する物件IDを返します
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
