package query

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const (
	defaultCatalogLimit = 20
	maxCatalogLimit     = 100
)

// ListCatalogsInput はカタログ一覧の入力を定義します
type ListCatalogsInput struct {
	Actor  authz.Principal
	Limit  int
	Offset int
}

// ListCatalogsOutput はカタログ一覧の出力を定義します
type ListCatalogsOutput struct {
	Catalogs []*entity.Catalog
	Total    int
	Limit    int
	Offset   int
}

// ListCatalogsQuery はカタログ一覧クエリです
type ListCatalogsQuery struct {
	catalogRepo repository.CatalogRepository
}

// NewListCatalogsQuery は新しいListCatalogsQueryを作成します
func NewListCatalogsQuery(catalogRepo repository.CatalogRepository) *ListCatalogsQuery {
	return &ListCatalogsQuery{catalogRepo: catalogRepo}
}

// Execute は主体の可視範囲内のカタログを返します
func (q *ListCatalogsQuery) Execute(ctx context.Context, input ListCatalogsInput) (*ListCatalogsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultCatalogLimit
	}
	if limit > maxCatalogLimit {
		limit = maxCatalogLimit
	}
	offset := max(input.Offset, 0)

	catalogs, total, err := q.catalogRepo.List(ctx, authz.CatalogScopeFor(input.Actor), limit, offset)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	return &ListCatalogsOutput{Catalogs: catalogs, Total: total, Limit: limit, Offset: offset}, nil
}
