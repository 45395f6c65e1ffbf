package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

// DeleteCatalogInput はカタログ削除の入力を定義します
type DeleteCatalogInput struct {
	Actor     authz.Principal
	CatalogID int64
}

// DeleteCatalogCommand はカタログ削除コマンドです
type DeleteCatalogCommand struct {
	catalogRepo repository.CatalogRepository
	access      service.AccessService
}

// NewDeleteCatalogCommand は新しいDeleteCatalogCommandを作成します
func NewDeleteCatalogCommand(catalogRepo repository.CatalogRepository, access service.AccessService) *DeleteCatalogCommand {
	return &DeleteCatalogCommand{catalogRepo: catalogRepo, access: access}
}

// Execute はカタログ削除を実行します（物件自体は削除しません）
func (c *DeleteCatalogCommand) Execute(ctx context.Context, input DeleteCatalogInput) error {
	catalog, err := c.catalogRepo.FindByID(ctx, input.CatalogID)
	if err != nil {
		return wrapRepoError(err)
	}
	if err := c.access.AuthorizeCatalog(authz.ActionDelete, input.Actor, catalog); err != nil {
		return err
	}
	if err := c.catalogRepo.Delete(ctx, catalog.ID); err != nil {
		return wrapRepoError(err)
	}
	return nil
}
