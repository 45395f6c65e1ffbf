package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const listingColumns = `
	id, broker_id, assigned_by_id, name, description_ru, description_en, price, currency, status, availability,
	country, city, district, address, complex_name, latitude, longitude, area, living_area, land_area,
	rooms, bedrooms, bathrooms, floors, total_floors, year_built, condition, features, photos, videos,
	created_at, updated_at`

const addressIndex = "idx_listings_address"

// DefaultListingLimit は limit 未指定時の件数です
const DefaultListingLimit = 20

// ListingRepository は物件リポジトリの実装です
type ListingRepository struct {
	*database.BaseRepository
}

// NewListingRepository は新しいListingRepositoryを作成します
func NewListingRepository(txManager *database.TxManager) *ListingRepository {
	return &ListingRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create は物件を作成します
func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	const q = `
		INSERT INTO listings (
			broker_id, assigned_by_id, name, description_ru, description_en, price, currency, status, availability,
			country, city, district, address, complex_name, latitude, longitude, area, living_area, land_area,
			rooms, bedrooms, bathrooms, floors, total_floors, year_built, condition, features, photos, videos,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31
		)
		RETURNING id`

	args := append([]any{l.BrokerID, l.AssignedByID}, attributeArgs(&l.ListingAttributes)...)
	args = append(args, l.CreatedAt, l.UpdatedAt)

	err := r.Querier(ctx).QueryRow(ctx, q, args...).Scan(&l.ID)
	return handleListingError(err)
}

// Update は物件を更新します
func (r *ListingRepository) Update(ctx context.Context, l *entity.Listing) error {
	const q = `
		UPDATE listings SET
			broker_id = $2, assigned_by_id = $3, name = $4, description_ru = $5, description_en = $6,
			price = $7, currency = $8, status = $9, availability = $10, country = $11, city = $12,
			district = $13, address = $14, complex_name = $15, latitude = $16, longitude = $17, area = $18,
			living_area = $19, land_area = $20, rooms = $21, bedrooms = $22, bathrooms = $23, floors = $24,
			total_floors = $25, year_built = $26, condition = $27, features = $28, photos = $29, videos = $30,
			updated_at = $31
		WHERE id = $1`

	args := append([]any{l.ID, l.BrokerID, l.AssignedByID}, attributeArgs(&l.ListingAttributes)...)
	args = append(args, l.UpdatedAt)

	tag, err := r.Querier(ctx).Exec(ctx, q, args...)
	if err != nil {
		return handleListingError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("Object")
	}
	return nil
}

// handleListingError は住所の一意インデックス違反を住所重複のフィールドエラーに変換します
func handleListingError(err error) error {
	if database.IsUniqueViolation(err, addressIndex) {
		return apperror.NewFieldError("non_field_errors", entity.MsgAddressExists)
	}
	return database.HandleError(err, "Object")
}

// Delete は物件を削除します
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.Querier(ctx).Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return r.HandleError(err, "Object")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("Object")
	}
	return nil
}

// FindByID はIDで物件を検索します
func (r *ListingRepository) FindByID(ctx context.Context, id int64) (*entity.Listing, error) {
	q := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	l, err := scanListing(r.Querier(ctx).QueryRow(ctx, q, id))
	if err != nil {
		return nil, r.HandleError(err, "Object")
	}
	return l, nil
}

// List は条件に一致する物件と総件数を返します
func (r *ListingRepository) List(ctx context.Context, f repository.ListingFilter) ([]*entity.Listing, int, error) {
	where, args := buildListingWhere(f)

	var total int
	countQ := `SELECT COUNT(*) FROM listings` + where
	if err := r.Querier(ctx).QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, r.HandleError(err, "Object")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListingLimit
	}
	offset := max(f.Offset, 0)

	q := fmt.Sprintf(`SELECT %s FROM listings%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		listingColumns, where, listingOrderClause(f.OrderBy), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Querier(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, 0, r.HandleError(err, "Object")
	}
	listings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Listing, error) {
		return scanListing(row)
	})
	if err != nil {
		return nil, 0, r.HandleError(err, "Object")
	}
	return listings, total, nil
}

// ExistsByAddress は建物名の無い物件で同一住所が存在するかを確認します
func (r *ListingRepository) ExistsByAddress(ctx context.Context, key entity.AddressKey, excludeID int64) (bool, error) {
	const q = `
		SELECT EXISTS(
			SELECT 1 FROM listings
			WHERE complex_name = '' AND country = $1 AND city = $2 AND district = $3 AND address = $4 AND id <> $5
		)`

	var exists bool
	err := r.Querier(ctx).QueryRow(ctx, q, key.Country, key.City, key.District, key.Address, excludeID).Scan(&exists)
	if err != nil {
		return false, r.HandleError(err, "Object")
	}
	return exists, nil
}

// ExistingIDs は ids のうち存在する物件IDを返します
func (r *ListingRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	rows, err := r.Querier(ctx).Query(ctx, `SELECT id FROM listings WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, r.HandleError(err, "Object")
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, r.HandleError(err, "Object")
	}
	return found, nil
}

func buildListingWhere(f repository.ListingFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.PriceMin != nil {
		add("price >= $%d", *f.PriceMin)
	}
	if f.PriceMax != nil {
		add("price <= $%d", *f.PriceMax)
	}
	if f.Status != nil {
		add("status = $%d", f.Status.String())
	}
	if f.Country != nil && *f.Country != "" {
		add("country ILIKE '%%' || $%d || '%%'", escapeLike(*f.Country))
	}
	if f.City != nil && *f.City != "" {
		add("city = $%d", *f.City)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func listingOrderClause(o repository.ListingOrdering) string {
	switch o {
	case repository.OrderByPriceAsc:
		return "price ASC, id ASC"
	case repository.OrderByPriceDesc:
		return "price DESC, id DESC"
	case repository.OrderByCreatedAtAsc:
		return "created_at ASC, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func attributeArgs(a *entity.ListingAttributes) []any {
	var condition *string
	if a.Condition != nil {
		c := a.Condition.String()
		condition = &c
	}
	features := a.Features
	if features == nil {
		features = map[string]any{}
	}
	return []any{
		a.Name, a.DescriptionRU, a.DescriptionEN, a.Price, a.Currency.String(), a.Status.String(), a.Availability,
		a.Country, a.City, a.District, a.Address, a.ComplexName,
		a.Latitude, a.Longitude, a.Area, a.LivingArea, a.LandArea,
		a.Rooms, a.Bedrooms, a.Bathrooms, a.Floors, a.TotalFloors, a.YearBuilt,
		condition, features, lo.CoalesceSliceOrEmpty(a.Photos), lo.CoalesceSliceOrEmpty(a.Videos),
	}
}

func scanListing(row pgx.Row) (*entity.Listing, error) {
	var (
		l                entity.Listing
		currency, status string
		condition        *string
	)
	a := &l.ListingAttributes
	if err := row.Scan(
		&l.ID, &l.BrokerID, &l.AssignedByID,
		&a.Name, &a.DescriptionRU, &a.DescriptionEN, &a.Price, &currency, &status, &a.Availability,
		&a.Country, &a.City, &a.District, &a.Address, &a.ComplexName,
		&a.Latitude, &a.Longitude, &a.Area, &a.LivingArea, &a.LandArea,
		&a.Rooms, &a.Bedrooms, &a.Bathrooms, &a.Floors, &a.TotalFloors, &a.YearBuilt,
		&condition, &a.Features, &a.Photos, &a.Videos, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Currency = valueobject.Currency(currency)
	a.Status = valueobject.ListingStatus(status)
	if condition != nil {
		c := valueobject.Condition(*condition)
		a.Condition = &c
	}
	if a.Features == nil {
		a.Features = map[string]any{}
	}
	a.Photos = lo.CoalesceSliceOrEmpty(a.Photos)
	a.Videos = lo.CoalesceSliceOrEmpty(a.Videos)
	return &l, nil
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
