package di

import (
	catalogcmd "github.com/mrewrin/LeadTransfer/internal/usecase/catalog/command"
	catalogqry "github.com/mrewrin/LeadTransfer/internal/usecase/catalog/query"
)

// CatalogUseCases はカタログ関連のUseCaseを保持します
type CatalogUseCases struct {
	// Commands
	Create *catalogcmd.CreateCatalogCommand
	Update *catalogcmd.UpdateCatalogCommand
	Delete *catalogcmd.DeleteCatalogCommand

	// Queries
	Get  *catalogqry.GetCatalogQuery
	List *catalogqry.ListCatalogsQuery
}

// NewCatalogUseCases は新しいCatalogUseCasesを作成します
func NewCatalogUseCases(c *Container) *CatalogUseCases {
	return &CatalogUseCases{
		Create: catalogcmd.NewCreateCatalogCommand(c.CatalogRepo, c.ListingRepo, c.TxManager, c.AccessService),
		Update: catalogcmd.NewUpdateCatalogCommand(c.CatalogRepo, c.ListingRepo, c.TxManager, c.AccessService),
		Delete: catalogcmd.NewDeleteCatalogCommand(c.CatalogRepo, c.AccessService),

		Get:  catalogqry.NewGetCatalogQuery(c.CatalogRepo, c.AccessService),
		List: catalogqry.NewListCatalogsQuery(c.CatalogRepo),
	}
}
