package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const catalogSelect = `
	SELECT c.id, c.broker_id, u.email, c.name, c.description, c.is_public, c.tags,
	       c.seo_meta_title, c.seo_meta_description, c.seo_keywords, c.created_at, c.updated_at
	FROM catalogs c
	JOIN users u ON u.id = c.broker_id`

// DefaultCatalogLimit は limit 未指定時の件数です
const DefaultCatalogLimit = 20

// CatalogRepository はカタログリポジトリの実装です
type CatalogRepository struct {
	*database.BaseRepository
}

// NewCatalogRepository は新しいCatalogRepositoryを作成します
func NewCatalogRepository(txManager *database.TxManager) *CatalogRepository {
	return &CatalogRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create はカタログを作成します
func (r *CatalogRepository) Create(ctx context.Context, c *entity.Catalog) error {
	const q = `
		INSERT INTO catalogs (broker_id, name, description, is_public, tags, seo_meta_title,
		                      seo_meta_description, seo_keywords, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.Querier(ctx).QueryRow(ctx, q,
		c.BrokerID, c.Name, c.Description, c.CatalogAttributes.IsPublic, tagsOrEmpty(c.Tags),
		c.SEOMetaTitle, c.SEOMetaDescription, c.SEOKeywords, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	return r.HandleError(err, "Catalog")
}

// Update はカタログ属性を更新します
func (r *CatalogRepository) Update(ctx context.Context, c *entity.Catalog) error {
	const q = `
		UPDATE catalogs
		SET name = $2, description = $3, is_public = $4, tags = $5, seo_meta_title = $6,
		    seo_meta_description = $7, seo_keywords = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, q,
		c.ID, c.Name, c.Description, c.CatalogAttributes.IsPublic, tagsOrEmpty(c.Tags),
		c.SEOMetaTitle, c.SEOMetaDescription, c.SEOKeywords, c.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err, "Catalog")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("Catalog")
	}
	return nil
}

// Delete はカタログを削除します
func (r *CatalogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.Querier(ctx).Exec(ctx, `DELETE FROM catalogs WHERE id = $1`, id)
	if err != nil {
		return r.HandleError(err, "Catalog")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("Catalog")
	}
	return nil
}

// FindByID はIDでカタログを物件参照付きで検索します
func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*entity.Catalog, error) {
	c, err := scanCatalog(r.Querier(ctx).QueryRow(ctx, catalogSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, r.HandleError(err, "Catalog")
	}
	c.Listings, err = r.ListListings(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindByIDForUpdate はIDでカタログを行ロック付きで検索します
func (r *CatalogRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Catalog, error) {
	c, err := scanCatalog(r.Querier(ctx).QueryRow(ctx, catalogSelect+` WHERE c.id = $1 FOR UPDATE OF c`, id))
	if err != nil {
		return nil, r.HandleError(err, "Catalog")
	}
	c.Listings, err = r.ListListings(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List は可視範囲内のカタログと総件数を返します
// トランザクション外では件数と一覧を並行して取得します
func (r *CatalogRepository) List(ctx context.Context, scope authz.CatalogScope, limit, offset int) ([]*entity.Catalog, int, error) {
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}
	offset = max(offset, 0)
	where, args := catalogScopeWhere(scope)

	var (
		catalogs []*entity.Catalog
		total    int
	)
	count := func(ctx context.Context) error {
		err := r.Querier(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM catalogs c`+where, args...).Scan(&total)
		return r.HandleError(err, "Catalog")
	}
	page := func(ctx context.Context) error {
		q := fmt.Sprintf(`%s%s ORDER BY c.created_at DESC, c.id DESC LIMIT $%d OFFSET $%d`,
			catalogSelect, where, len(args)+1, len(args)+2)
		rows, err := r.Querier(ctx).Query(ctx, q, append(append([]any{}, args...), limit, offset)...)
		if err != nil {
			return r.HandleError(err, "Catalog")
		}
		catalogs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Catalog, error) {
			return scanCatalog(row)
		})
		return r.HandleError(err, "Catalog")
	}

	if r.TxManager().InTransaction(ctx) {
		if err := count(ctx); err != nil {
			return nil, 0, err
		}
		if err := page(ctx); err != nil {
			return nil, 0, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return count(gctx) })
		g.Go(func() error { return page(gctx) })
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}

	if err := r.attachListings(ctx, catalogs); err != nil {
		return nil, 0, err
	}
	return catalogs, total, nil
}

// ListListings はカタログの物件参照を並び順で返します
// 1文で読み出すため、置き換え途中の状態は観測されません
func (r *CatalogRepository) ListListings(ctx context.Context, catalogID int64) ([]entity.CatalogListing, error) {
	const q = `
		SELECT catalog_id, listing_id, sort_order, notes, created_at
		FROM catalog_listings
		WHERE catalog_id = $1
		ORDER BY sort_order, listing_id`

	rows, err := r.Querier(ctx).Query(ctx, q, catalogID)
	if err != nil {
		return nil, r.HandleError(err, "Catalog")
	}
	listings, err := pgx.CollectRows(rows, scanCatalogListing)
	if err != nil {
		return nil, r.HandleError(err, "Catalog")
	}
	return listings, nil
}

// ReplaceListings はカタログの物件参照を丸ごと置き換えます
// 呼び出し側のトランザクションがあればそれを使います
func (r *CatalogRepository) ReplaceListings(ctx context.Context, catalogID int64, listings []entity.CatalogListing) error {
	return r.TxManager().WithTransaction(ctx, func(ctx context.Context) error {
		q := r.Querier(ctx)
		if _, err := q.Exec(ctx, `DELETE FROM catalog_listings WHERE catalog_id = $1`, catalogID); err != nil {
			return r.HandleError(err, "Catalog")
		}
		if len(listings) == 0 {
			return nil
		}
		_, err := q.CopyFrom(ctx,
			pgx.Identifier{"catalog_listings"},
			[]string{"catalog_id", "listing_id", "sort_order", "notes", "created_at"},
			pgx.CopyFromSlice(len(listings), func(i int) ([]any, error) {
				l := listings[i]
				return []any{catalogID, l.ListingID, l.SortOrder, l.Notes, l.CreatedAt}, nil
			}),
		)
		return r.HandleError(err, "Catalog")
	})
}

func (r *CatalogRepository) attachListings(ctx context.Context, catalogs []*entity.Catalog) error {
	if len(catalogs) == 0 {
		return nil
	}
	ids := make([]int64, len(catalogs))
	byID := make(map[int64]*entity.Catalog, len(catalogs))
	for i, c := range catalogs {
		ids[i] = c.ID
		c.Listings = []entity.CatalogListing{}
		byID[c.ID] = c
	}

	const q = `
		SELECT catalog_id, listing_id, sort_order, notes, created_at
		FROM catalog_listings
		WHERE catalog_id = ANY($1)
		ORDER BY catalog_id, sort_order, listing_id`

	rows, err := r.Querier(ctx).Query(ctx, q, ids)
	if err != nil {
		return r.HandleError(err, "Catalog")
	}
	all, err := pgx.CollectRows(rows, scanCatalogListing)
	if err != nil {
		return r.HandleError(err, "Catalog")
	}
	for _, l := range all {
		c := byID[l.CatalogID]
		c.Listings = append(c.Listings, l)
	}
	return nil
}

func catalogScopeWhere(scope authz.CatalogScope) (string, []any) {
	switch {
	case scope.All:
		return "", nil
	case scope.OwnerID != 0:
		return ` WHERE (c.is_public OR c.broker_id = $1)`, []any{scope.OwnerID}
	default:
		return ` WHERE c.is_public`, nil
	}
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanCatalog(row pgx.Row) (*entity.Catalog, error) {
	var c entity.Catalog
	if err := row.Scan(
		&c.ID, &c.BrokerID, &c.BrokerEmail, &c.Name, &c.Description, &c.CatalogAttributes.IsPublic, &c.Tags,
		&c.SEOMetaTitle, &c.SEOMetaDescription, &c.SEOKeywords, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c, nil
}

func scanCatalogListing(row pgx.CollectableRow) (entity.CatalogListing, error) {
	var l entity.CatalogListing
	err := row.Scan(&l.CatalogID, &l.ListingID, &l.SortOrder, &l.Notes, &l.CreatedAt)
	return l, err
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)
