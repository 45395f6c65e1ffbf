package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// GetCatalogInput はカタログ取得の入力を定義します
type GetCatalogInput struct {
	Actor     authz.Principal
	CatalogID int64
}

// GetCatalogQuery はカタログ詳細クエリです
type GetCatalogQuery struct {
	catalogRepo repository.CatalogRepository
	access      service.AccessService
}

// NewGetCatalogQuery は新しいGetCatalogQueryを作成します
func NewGetCatalogQuery(catalogRepo repository.CatalogRepository, access service.AccessService) *GetCatalogQuery {
	return &GetCatalogQuery{catalogRepo: catalogRepo, access: access}
}

// Execute はカタログを取得します
// 非公開カタログは所有者とスーパーユーザー以外には 403 を返します
func (q *GetCatalogQuery) Execute(ctx context.Context, input GetCatalogInput) (*entity.Catalog, error) {
	catalog, err := q.catalogRepo.FindByID(ctx, input.CatalogID)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewInternalError(err)
	}
	if err := q.access.AuthorizeCatalog(authz.ActionRetrieve, input.Actor, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
