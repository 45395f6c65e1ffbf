package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

// DeleteListingInput は物件削除の入力を定義します
type DeleteListingInput struct {
	Actor     authz.Principal
	ListingID int64
}

// DeleteListingCommand は物件削除コマンドです
type DeleteListingCommand struct {
	listingRepo repository.ListingRepository
	access      service.AccessService
}

// NewDeleteListingCommand は新しいDeleteListingCommandを作成します
func NewDeleteListingCommand(listingRepo repository.ListingRepository, access service.AccessService) *DeleteListingCommand {
	return &DeleteListingCommand{listingRepo: listingRepo, access: access}
}

// Execute は物件削除を実行します
// カタログ内の参照は外部キーのカスケードで削除されます
func (c *DeleteListingCommand) Execute(ctx context.Context, input DeleteListingInput) error {
	listing, err := c.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		return wrapRepoError(err)
	}
	if err := c.access.AuthorizeListing(authz.ActionDelete, input.Actor, listing); err != nil {
		return err
	}
	if err := c.listingRepo.Delete(ctx, listing.ID); err != nil {
		return wrapRepoError(err)
	}
	return nil
}
