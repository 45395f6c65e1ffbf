package di

import (
	listingcmd "github.com/mrewrin/LeadTransfer/internal/usecase/listing/command"
	listingqry "github.com/mrewrin/LeadTransfer/internal/usecase/listing/query"
)

// ListingUseCases は物件関連のUseCaseを保持します
type ListingUseCases struct {
	// Commands
	Create       *listingcmd.CreateListingCommand
	Update       *listingcmd.UpdateListingCommand
	Delete       *listingcmd.DeleteListingCommand
	AssignBroker *listingcmd.AssignBrokerCommand

	// Queries
	Get  *listingqry.GetListingQuery
	List *listingqry.ListListingsQuery
}

// NewListingUseCases は新しいListingUseCasesを作成します
func NewListingUseCases(c *Container) *ListingUseCases {
	return &ListingUseCases{
		Create:       listingcmd.NewCreateListingCommand(c.ListingRepo, c.AccessService),
		Update:       listingcmd.NewUpdateListingCommand(c.ListingRepo, c.AccessService),
		Delete:       listingcmd.NewDeleteListingCommand(c.ListingRepo, c.AccessService),
		AssignBroker: listingcmd.NewAssignBrokerCommand(c.ListingRepo, c.PrincipalRepo, c.AccessService),

		Get:  listingqry.NewGetListingQuery(c.ListingRepo),
		List: listingqry.NewListListingsQuery(c.ListingRepo),
	}
}
