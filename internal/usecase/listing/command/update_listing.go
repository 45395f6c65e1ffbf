package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// UpdateListingInput は物件更新の入力を定義します
type UpdateListingInput struct {
	Actor      authz.Principal
	ListingID  int64
	Attributes entity.ListingAttributes
	// BrokerID はリクエストに broker が含まれていた場合のみ設定されます
	BrokerID *int64
}

// UpdateListingCommand は物件更新コマンドです
type UpdateListingCommand struct {
	listingRepo repository.ListingRepository
	access      service.AccessService
}

// NewUpdateListingCommand は新しいUpdateListingCommandを作成します
func NewUpdateListingCommand(listingRepo repository.ListingRepository, access service.AccessService) *UpdateListingCommand {
	return &UpdateListingCommand{listingRepo: listingRepo, access: access}
}

// Execute は物件更新を実行します
func (c *UpdateListingCommand) Execute(ctx context.Context, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := c.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, wrapRepoError(err)
	}

	if err := c.access.AuthorizeListing(authz.ActionUpdate, input.Actor, listing); err != nil {
		return nil, err
	}

	if input.BrokerID != nil && *input.BrokerID != listing.BrokerID {
		return nil, apperror.NewFieldError("broker", MsgBrokerImmutable)
	}
	if err := validateAttributes(input.Attributes); err != nil {
		return nil, err
	}

	listing.Update(input.Attributes)
	if err := ensureUniqueAddress(ctx, c.listingRepo, listing); err != nil {
		return nil, err
	}

	if err := c.listingRepo.Update(ctx, listing); err != nil {
		return nil, wrapRepoError(err)
	}
	return listing, nil
}
