package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// AssignBrokerInput は担当ブローカー変更の入力を定義します
type AssignBrokerInput struct {
	Actor     authz.Principal
	ListingID int64
	BrokerID  int64
}

// AssignBrokerCommand は管理者による担当ブローカー変更コマンドです
type AssignBrokerCommand struct {
	listingRepo   repository.ListingRepository
	principalRepo repository.PrincipalRepository
	access        service.AccessService
}

// NewAssignBrokerCommand は新しいAssignBrokerCommandを作成します
func NewAssignBrokerCommand(
	listingRepo repository.ListingRepository,
	principalRepo repository.PrincipalRepository,
	access service.AccessService,
) *AssignBrokerCommand {
	return &AssignBrokerCommand{
		listingRepo:   listingRepo,
		principalRepo: principalRepo,
		access:        access,
	}
}

// Execute は担当ブローカーを変更し、変更者を記録します
func (c *AssignBrokerCommand) Execute(ctx context.Context, input AssignBrokerInput) (*entity.Listing, error) {
	if err := c.access.Authorize(authz.PolicyListingDelegation, input.Actor); err != nil {
		return nil, err
	}

	listing, err := c.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, wrapRepoError(err)
	}

	// 新しい担当者は broker / ambassador ロールを持つ有効なユーザーのみ
	target, err := c.principalRepo.LoadPrincipal(ctx, input.BrokerID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewFieldError("broker_id", "User not found")
		}
		return nil, apperror.NewInternalError(err)
	}
	if !target.IsActive || !authz.IsBrokerOrAmbassador.Allows(target) {
		return nil, apperror.NewFieldError("broker_id", "user is not an active broker or ambassador")
	}

	listing.AssignBroker(target.UserID, input.Actor.UserID)
	if err := c.listingRepo.Update(ctx, listing); err != nil {
		return nil, wrapRepoError(err)
	}
	return listing, nil
}
