package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

// CreateListingInput は物件作成の入力を定義します
// 担当ブローカーは常に実行者です
type CreateListingInput struct {
	Actor      authz.Principal
	Attributes entity.ListingAttributes
}

// CreateListingCommand は物件作成コマンドです
type CreateListingCommand struct {
	listingRepo repository.ListingRepository
	access      service.AccessService
}

// NewCreateListingCommand は新しいCreateListingCommandを作成します
func NewCreateListingCommand(listingRepo repository.ListingRepository, access service.AccessService) *CreateListingCommand {
	return &CreateListingCommand{listingRepo: listingRepo, access: access}
}

// Execute は物件作成を実行します
func (c *CreateListingCommand) Execute(ctx context.Context, input CreateListingInput) (*entity.Listing, error) {
	if err := c.access.AuthorizeListing(authz.ActionCreate, input.Actor, nil); err != nil {
		return nil, err
	}
	if err := validateAttributes(input.Attributes); err != nil {
		return nil, err
	}

	listing := entity.NewListing(input.Actor.UserID, input.Attributes)
	if err := ensureUniqueAddress(ctx, c.listingRepo, listing); err != nil {
		return nil, err
	}

	if err := c.listingRepo.Create(ctx, listing); err != nil {
		return nil, wrapRepoError(err)
	}
	return listing, nil
}
