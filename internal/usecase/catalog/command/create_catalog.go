package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

// CreateCatalogInput はカタログ作成の入力を定義します
type CreateCatalogInput struct {
	Actor      authz.Principal
	Attributes entity.CatalogAttributes
	ListingIDs []int64
	// ListingNotes は ListingIDs に含まれる物件ごとのメモです
	ListingNotes map[int64]string
}

// CreateCatalogCommand はカタログ作成コマンドです
type CreateCatalogCommand struct {
	catalogRepo repository.CatalogRepository
	listingRepo repository.ListingRepository
	txManager   repository.TransactionManager
	access      service.AccessService
}

// NewCreateCatalogCommand は新しいCreateCatalogCommandを作成します
func NewCreateCatalogCommand(
	catalogRepo repository.CatalogRepository,
	listingRepo repository.ListingRepository,
	txManager repository.TransactionManager,
	access service.AccessService,
) *CreateCatalogCommand {
	return &CreateCatalogCommand{
		catalogRepo: catalogRepo,
		listingRepo: listingRepo,
		txManager:   txManager,
		access:      access,
	}
}

// Execute はカタログと物件参照を同一トランザクションで作成します
func (c *CreateCatalogCommand) Execute(ctx context.Context, input CreateCatalogInput) (*entity.Catalog, error) {
	if err := c.access.AuthorizeCatalog(authz.ActionCreate, input.Actor, nil); err != nil {
		return nil, err
	}

	catalog := entity.NewCatalog(input.Actor.UserID, input.Attributes)
	catalog.BrokerEmail = input.Actor.Email

	err := c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		ids, err := resolveListingIDs(ctx, c.listingRepo, input.ListingIDs, input.ListingNotes)
		if err != nil {
			return err
		}
		if err := c.catalogRepo.Create(ctx, catalog); err != nil {
			return err
		}
		catalog.Listings = entity.BuildCatalogListings(catalog.ID, ids, input.ListingNotes)
		if len(catalog.Listings) == 0 {
			return nil
		}
		return c.catalogRepo.ReplaceListings(ctx, catalog.ID, catalog.Listings)
	})
	if err != nil {
		return nil, wrapRepoError(err)
	}
	return catalog, nil
}
