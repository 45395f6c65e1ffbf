package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// UpdateCatalogInput はカタログ更新の入力を定義します
type UpdateCatalogInput struct {
	Actor      authz.Principal
	CatalogID  int64
	Attributes entity.CatalogAttributes
	// ListingIDs が nil の場合、物件参照は変更しません
	// 空スライスの場合はすべて外します
	ListingIDs *[]int64
	// ListingNotes は ListingIDs を指定した場合のみ有効です
	ListingNotes map[int64]string
}

// UpdateCatalogCommand はカタログ更新コマンドです
type UpdateCatalogCommand struct {
	catalogRepo repository.CatalogRepository
	listingRepo repository.ListingRepository
	txManager   repository.TransactionManager
	access      service.AccessService
}

// NewUpdateCatalogCommand は新しいUpdateCatalogCommandを作成します
func NewUpdateCatalogCommand(
	catalogRepo repository.CatalogRepository,
	listingRepo repository.ListingRepository,
	txManager repository.TransactionManager,
	access service.AccessService,
) *UpdateCatalogCommand {
	return &UpdateCatalogCommand{
		catalogRepo: catalogRepo,
		listingRepo: listingRepo,
		txManager:   txManager,
		access:      access,
	}
}

// Execute はカタログを行ロックした上で属性と物件参照を置き換えます
// 同時更新は行ロックで直列化され、いずれか一方の集合が丸ごと残ります
func (c *UpdateCatalogCommand) Execute(ctx context.Context, input UpdateCatalogInput) (*entity.Catalog, error) {
	var catalog *entity.Catalog
	err := c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		catalog, err = c.catalogRepo.FindByIDForUpdate(ctx, input.CatalogID)
		if err != nil {
			return err
		}
		if err := c.access.AuthorizeCatalog(authz.ActionUpdate, input.Actor, catalog); err != nil {
			return err
		}

		catalog.Update(input.Attributes)
		if err := c.catalogRepo.Update(ctx, catalog); err != nil {
			return err
		}

		if input.ListingIDs == nil {
			if len(input.ListingNotes) > 0 {
				return apperror.NewFieldError("catalog_object_notes", MsgNotesWithoutObjects)
			}
			return nil
		}
		ids, err := resolveListingIDs(ctx, c.listingRepo, *input.ListingIDs, input.ListingNotes)
		if err != nil {
			return err
		}
		catalog.Listings = entity.BuildCatalogListings(catalog.ID, ids, input.ListingNotes)
		return c.catalogRepo.ReplaceListings(ctx, catalog.ID, catalog.Listings)
	})
	if err != nil {
		return nil, wrapRepoError(err)
	}
	return catalog, nil
}
