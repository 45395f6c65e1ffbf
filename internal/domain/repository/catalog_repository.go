package repository

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// CatalogRepository はカタログリポジトリインターフェースを定義します
type CatalogRepository interface {
	// Create はカタログを作成し、採番されたIDを設定します
	Create(ctx context.Context, catalog *entity.Catalog) error

	// Update はカタログ属性を更新します
	Update(ctx context.Context, catalog *entity.Catalog) error

	// Delete はカタログを削除します（カタログ内の物件参照も削除されます）
	Delete(ctx context.Context, id int64) error

	// FindByID はIDでカタログを物件参照付きで検索します
	FindByID(ctx context.Context, id int64) (*entity.Catalog, error)

	// FindByIDForUpdate はIDでカタログを行ロック付きで検索します
	// トランザクション内で呼び出す必要があります
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Catalog, error)

	// List は可視範囲内のカタログと総件数を返します
	List(ctx context.Context, scope authz.CatalogScope, limit, offset int) ([]*entity.Catalog, int, error)

	// ListListings はカタログの物件参照を並び順で返します
	ListListings(ctx context.Context, catalogID int64) ([]entity.CatalogListing, error)

	// ReplaceListings はカタログの物件参照を丸ごと置き換えます
	ReplaceListings(ctx context.Context, catalogID int64, listings []entity.CatalogListing) error
}
