package command

import (
	"context"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

const (
	// MsgAddressExists は住所重複時のメッセージです
	MsgAddressExists = entity.MsgAddressExists
	// MsgBrokerImmutable は更新時に担当ブローカーを変えようとした場合のメッセージです
	MsgBrokerImmutable = "broker cannot be changed"
)

// validateAttributes は永続化前の属性を検証します
func validateAttributes(attrs entity.ListingAttributes) error {
	var details []apperror.FieldError
	if attrs.Price < 0 {
		details = append(details, apperror.FieldError{Field: "price", Message: "Ensure this value is greater than or equal to 0."})
	}
	if attrs.Latitude != nil && (*attrs.Latitude < -90 || *attrs.Latitude > 90) {
		details = append(details, apperror.FieldError{Field: "latitude", Message: "Ensure this value is between -90 and 90."})
	}
	if attrs.Longitude != nil && (*attrs.Longitude < -180 || *attrs.Longitude > 180) {
		details = append(details, apperror.FieldError{Field: "longitude", Message: "Ensure this value is between -180 and 180."})
	}
	if len(details) > 0 {
		return apperror.NewValidationError("invalid object", details)
	}
	return nil
}

// ensureUniqueAddress は建物名の無い物件について住所の重複を検査します
func ensureUniqueAddress(ctx context.Context, repo repository.ListingRepository, listing *entity.Listing) error {
	if !listing.RequiresUniqueAddress() {
		return nil
	}
	exists, err := repo.ExistsByAddress(ctx, listing.AddressKey(), listing.ID)
	if err != nil {
		return apperror.NewInternalError(err)
	}
	if exists {
		return apperror.NewFieldError("non_field_errors", MsgAddressExists)
	}
	return nil
}

func wrapRepoError(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.NewInternalError(err)
}
