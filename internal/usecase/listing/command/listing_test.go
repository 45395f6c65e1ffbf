package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/usecase/listing/command"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func withRole(id int64, role authz.RoleName) authz.Principal {
	return authz.Principal{UserID: id, IsActive: true, Profile: &authz.ProfileRef{Role: &role}}
}

func attrs() entity.ListingAttributes {
	return entity.ListingAttributes{
		Name:    "Flat",
		Price:   120000,
		Country: "Kazakhstan",
		City:    "Almaty",
		Address: "Abay 1",
	}
}

func existingListing(id, brokerID int64) *entity.Listing {
	l := entity.NewListing(brokerID, attrs())
	l.ID = id
	return l
}

func assertFieldError(t *testing.T, err error, field, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, apperror.CodeValidationError, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, field, appErr.Details[0].Field)
	assert.Equal(t, message, appErr.Details[0].Message)
}

func TestCreateListingCommand_Execute_StampsActorAsBroker(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	repo.On("ExistsByAddress", ctx, entity.AddressKey{Country: "Kazakhstan", City: "Almaty", Address: "Abay 1"}, int64(0)).Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(l *entity.Listing) bool { return l.BrokerID == 5 })).Return(nil)

	l, err := command.NewCreateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.CreateListingInput{
		Actor:      withRole(5, authz.RoleBroker),
		Attributes: attrs(),
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.DefaultCurrency, l.Currency)
	assert.Equal(t, valueobject.ListingStatusSale, l.Status)
}

func TestCreateListingCommand_Execute_Gate(t *testing.T) {
	tests := []struct {
		name  string
		actor authz.Principal
		code  apperror.ErrorCode
	}{
		{name: "anonymous", actor: authz.Anonymous(), code: apperror.CodeUnauthorized},
		{name: "buyer", actor: withRole(1, authz.RoleBuyer), code: apperror.CodeForbidden},
		{name: "moderator", actor: withRole(2, authz.RoleModerator), code: apperror.CodeForbidden},
		{name: "admin role without superuser", actor: withRole(3, authz.RoleAdmin), code: apperror.CodeForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := command.NewCreateListingCommand(mocks.NewMockListingRepository(t), service.NewAccessService(nil, nil)).
				Execute(context.Background(), command.CreateListingInput{Actor: tt.actor, Attributes: attrs()})
			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestCreateListingCommand_Execute_AmbassadorAndSuperuserAllowed(t *testing.T) {
	for _, actor := range []authz.Principal{
		withRole(6, authz.RoleAmbassador),
		{UserID: 7, IsSuperuser: true},
	} {
		ctx := context.Background()
		repo := mocks.NewMockListingRepository(t)
		repo.On("ExistsByAddress", ctx, mock.Anything, int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := command.NewCreateListingCommand(repo, service.NewAccessService(nil, nil)).
			Execute(ctx, command.CreateListingInput{Actor: actor, Attributes: attrs()})
		require.NoError(t, err)
	}
}

func TestCreateListingCommand_Execute_DuplicateAddress(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	repo.On("ExistsByAddress", ctx, mock.Anything, int64(0)).Return(true, nil)

	_, err := command.NewCreateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.CreateListingInput{
		Actor:      withRole(5, authz.RoleBroker),
		Attributes: attrs(),
	})

	assertFieldError(t, err, "non_field_errors", command.MsgAddressExists)
}

func TestCreateListingCommand_Execute_ComplexNameSkipsAddressCheck(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	a := attrs()
	a.ComplexName = "Esentai Apartments"
	_, err := command.NewCreateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.CreateListingInput{
		Actor:      withRole(5, authz.RoleBroker),
		Attributes: a,
	})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsByAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateListingCommand_Execute_NegativePrice(t *testing.T) {
	a := attrs()
	a.Price = -1
	_, err := command.NewCreateListingCommand(mocks.NewMockListingRepository(t), service.NewAccessService(nil, nil)).
		Execute(context.Background(), command.CreateListingInput{Actor: withRole(5, authz.RoleBroker), Attributes: a})

	assertFieldError(t, err, "price", "Ensure this value is greater than or equal to 0.")
}

func TestUpdateListingCommand_Execute_OwnerUpdates(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	listing := existingListing(10, 5)
	same := int64(5)

	repo.On("FindByID", ctx, int64(10)).Return(listing, nil)
	repo.On("ExistsByAddress", ctx, mock.Anything, int64(10)).Return(false, nil)
	repo.On("Update", ctx, listing).Return(nil)

	a := attrs()
	a.Price = 99000
	out, err := command.NewUpdateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.UpdateListingInput{
		Actor:      withRole(5, authz.RoleBroker),
		ListingID:  10,
		Attributes: a,
		BrokerID:   &same,
	})

	require.NoError(t, err)
	assert.Equal(t, 99000.0, out.Price)
	assert.Equal(t, int64(5), out.BrokerID)
}

func TestUpdateListingCommand_Execute_NonOwnerBrokerForbidden(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	repo.On("FindByID", ctx, int64(10)).Return(existingListing(10, 5), nil)

	_, err := command.NewUpdateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.UpdateListingInput{
		Actor:      withRole(6, authz.RoleBroker),
		ListingID:  10,
		Attributes: attrs(),
	})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Equal(t, authz.ReasonChangeOwnObjects, appErr.Message)
}

func TestUpdateListingCommand_Execute_BrokerCannotBeChanged(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	repo.On("FindByID", ctx, int64(10)).Return(existingListing(10, 5), nil)
	other := int64(6)

	_, err := command.NewUpdateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.UpdateListingInput{
		Actor:      authz.Principal{UserID: 1, IsSuperuser: true},
		ListingID:  10,
		Attributes: attrs(),
		BrokerID:   &other,
	})

	assertFieldError(t, err, "broker", command.MsgBrokerImmutable)
}

func TestUpdateListingCommand_Execute_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockListingRepository(t)
	repo.On("FindByID", ctx, int64(11)).Return(nil, apperror.NewNotFoundError("Object"))

	_, err := command.NewUpdateListingCommand(repo, service.NewAccessService(nil, nil)).Execute(ctx, command.UpdateListingInput{
		Actor:     withRole(5, authz.RoleBroker),
		ListingID: 11,
	})

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteListingCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := mocks.NewMockListingRepository(t)
		repo.On("FindByID", ctx, int64(10)).Return(existingListing(10, 5), nil)
		repo.On("Delete", ctx, int64(10)).Return(nil)

		err := command.NewDeleteListingCommand(repo, service.NewAccessService(nil, nil)).
			Execute(ctx, command.DeleteListingInput{Actor: withRole(5, authz.RoleAmbassador), ListingID: 10})
		require.NoError(t, err)
	})

	t.Run("other broker forbidden", func(t *testing.T) {
		repo := mocks.NewMockListingRepository(t)
		repo.On("FindByID", ctx, int64(10)).Return(existingListing(10, 5), nil)

		err := command.NewDeleteListingCommand(repo, service.NewAccessService(nil, nil)).
			Execute(ctx, command.DeleteListingInput{Actor: withRole(9, authz.RoleBroker), ListingID: 10})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, authz.ReasonDeleteOwnObjects, appErr.Message)
	})
}

func TestAssignBrokerCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("moderator delegates to ambassador", func(t *testing.T) {
		listings := mocks.NewMockListingRepository(t)
		principals := mocks.NewMockPrincipalRepository(t)
		listing := existingListing(10, 5)

		listings.On("FindByID", ctx, int64(10)).Return(listing, nil)
		principals.On("LoadPrincipal", ctx, int64(8)).Return(withRole(8, authz.RoleAmbassador), nil)
		listings.On("Update", ctx, listing).Return(nil)

		out, err := command.NewAssignBrokerCommand(listings, principals, service.NewAccessService(nil, nil)).
			Execute(ctx, command.AssignBrokerInput{Actor: withRole(2, authz.RoleModerator), ListingID: 10, BrokerID: 8})

		require.NoError(t, err)
		assert.Equal(t, int64(8), out.BrokerID)
		require.NotNil(t, out.AssignedByID)
		assert.Equal(t, int64(2), *out.AssignedByID)
	})

	t.Run("target is a buyer", func(t *testing.T) {
		listings := mocks.NewMockListingRepository(t)
		principals := mocks.NewMockPrincipalRepository(t)
		listings.On("FindByID", ctx, int64(10)).Return(existingListing(10, 5), nil)
		principals.On("LoadPrincipal", ctx, int64(8)).Return(withRole(8, authz.RoleBuyer), nil)

		_, err := command.NewAssignBrokerCommand(listings, principals, service.NewAccessService(nil, nil)).
			Execute(ctx, command.AssignBrokerInput{Actor: authz.Principal{UserID: 1, IsSuperuser: true}, ListingID: 10, BrokerID: 8})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "broker_id", appErr.Details[0].Field)
	})

	t.Run("broker cannot delegate", func(t *testing.T) {
		_, err := command.NewAssignBrokerCommand(mocks.NewMockListingRepository(t), mocks.NewMockPrincipalRepository(t), service.NewAccessService(nil, nil)).
			Execute(ctx, command.AssignBrokerInput{Actor: withRole(5, authz.RoleBroker), ListingID: 10, BrokerID: 8})
		assert.True(t, apperror.IsForbidden(err))
	})
}
