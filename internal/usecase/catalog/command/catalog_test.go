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
	"github.com/mrewrin/LeadTransfer/internal/usecase/catalog/command"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func broker(id int64) authz.Principal {
	role := authz.RoleBroker
	return authz.Principal{UserID: id, Email: "broker@example.com", IsActive: true, Profile: &authz.ProfileRef{Role: &role}}
}

func listingIDs(listings []entity.CatalogListing) []int64 {
	ids := make([]int64, len(listings))
	for i, l := range listings {
		ids[i] = l.ListingID
	}
	return ids
}

func TestCreateCatalogCommand_Execute_DedupesListingsInOrder(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)
	listings := mocks.NewMockListingRepository(t)

	listings.On("ExistingIDs", ctx, []int64{3, 1, 2}).Return([]int64{1, 2, 3}, nil)
	catalogs.On("Create", ctx, mock.AnythingOfType("*entity.Catalog")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Catalog).ID = 77 }).
		Return(nil)
	catalogs.On("ReplaceListings", ctx, int64(77), mock.MatchedBy(func(ls []entity.CatalogListing) bool {
		return len(ls) == 3 && ls[0].ListingID == 3 && ls[0].SortOrder == 0 && ls[2].ListingID == 2 && ls[2].SortOrder == 2
	})).Return(nil)

	out, err := command.NewCreateCatalogCommand(catalogs, listings, mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.CreateCatalogInput{
			Actor:      broker(5),
			Attributes: entity.CatalogAttributes{Name: "Sea view"},
			ListingIDs: []int64{3, 1, 3, 2, 1},
		})

	require.NoError(t, err)
	assert.Equal(t, int64(5), out.BrokerID)
	assert.Equal(t, "broker@example.com", out.BrokerEmail)
	assert.False(t, out.IsPublic())
	assert.Equal(t, []int64{3, 1, 2}, listingIDs(out.Listings))
	assert.Equal(t, []string{}, out.Tags)
}

func TestCreateCatalogCommand_Execute_UnknownListing(t *testing.T) {
	ctx := context.Background()
	listings := mocks.NewMockListingRepository(t)
	listings.On("ExistingIDs", ctx, []int64{1, 999}).Return([]int64{1}, nil)

	_, err := command.NewCreateCatalogCommand(mocks.NewMockCatalogRepository(t), listings, mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.CreateCatalogInput{Actor: broker(5), Attributes: entity.CatalogAttributes{Name: "x"}, ListingIDs: []int64{1, 999}})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeValidationError, appErr.Code)
	assert.Equal(t, "catalog_objects", appErr.Details[0].Field)
	assert.Equal(t, `Invalid pk "999" - object does not exist.`, appErr.Details[0].Message)
}

func TestCreateCatalogCommand_Execute_BuyerForbidden(t *testing.T) {
	role := authz.RoleBuyer
	_, err := command.NewCreateCatalogCommand(mocks.NewMockCatalogRepository(t), mocks.NewMockListingRepository(t), mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(context.Background(), command.CreateCatalogInput{Actor: authz.Principal{UserID: 1, Profile: &authz.ProfileRef{Role: &role}}})

	assert.True(t, apperror.IsForbidden(err))
}

func TestUpdateCatalogCommand_Execute_ReplacesWholeSet(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)
	listings := mocks.NewMockListingRepository(t)

	existing := entity.NewCatalog(5, entity.CatalogAttributes{Name: "Old"})
	existing.ID = 77
	existing.Listings = entity.BuildCatalogListings(77, []int64{1, 2}, nil)

	catalogs.On("FindByIDForUpdate", ctx, int64(77)).Return(existing, nil)
	catalogs.On("Update", ctx, existing).Return(nil)
	listings.On("ExistingIDs", ctx, []int64{4}).Return([]int64{4}, nil)
	catalogs.On("ReplaceListings", ctx, int64(77), mock.Anything).Return(nil)

	ids := []int64{4, 4}
	out, err := command.NewUpdateCatalogCommand(catalogs, listings, mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.UpdateCatalogInput{
			Actor:      broker(5),
			CatalogID:  77,
			Attributes: entity.CatalogAttributes{Name: "New", IsPublic: true, Tags: []string{"sea"}},
			ListingIDs: &ids,
		})

	require.NoError(t, err)
	assert.Equal(t, "New", out.Name)
	assert.True(t, out.IsPublic())
	assert.Equal(t, []int64{4}, listingIDs(out.Listings))
}

func TestUpdateCatalogCommand_Execute_EmptySetClearsListings(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)

	existing := entity.NewCatalog(5, entity.CatalogAttributes{Name: "Old"})
	existing.ID = 77
	existing.Listings = entity.BuildCatalogListings(77, []int64{1}, nil)

	catalogs.On("FindByIDForUpdate", ctx, int64(77)).Return(existing, nil)
	catalogs.On("Update", ctx, existing).Return(nil)
	catalogs.On("ReplaceListings", ctx, int64(77), []entity.CatalogListing{}).Return(nil)

	ids := []int64{}
	out, err := command.NewUpdateCatalogCommand(catalogs, mocks.NewMockListingRepository(t), mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.UpdateCatalogInput{Actor: broker(5), CatalogID: 77, Attributes: entity.CatalogAttributes{Name: "Old"}, ListingIDs: &ids})

	require.NoError(t, err)
	assert.Empty(t, out.Listings)
}

func TestUpdateCatalogCommand_Execute_NilSetKeepsListings(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)

	existing := entity.NewCatalog(5, entity.CatalogAttributes{Name: "Old"})
	existing.ID = 77
	existing.Listings = entity.BuildCatalogListings(77, []int64{1, 2}, nil)

	catalogs.On("FindByIDForUpdate", ctx, int64(77)).Return(existing, nil)
	catalogs.On("Update", ctx, existing).Return(nil)

	out, err := command.NewUpdateCatalogCommand(catalogs, mocks.NewMockListingRepository(t), mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.UpdateCatalogInput{Actor: broker(5), CatalogID: 77, Attributes: entity.CatalogAttributes{Name: "Renamed"}})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, listingIDs(out.Listings))
	catalogs.AssertNotCalled(t, "ReplaceListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateCatalogCommand_Execute_OtherBrokerForbidden(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)
	existing := entity.NewCatalog(5, entity.CatalogAttributes{Name: "Old", IsPublic: true})
	existing.ID = 77
	catalogs.On("FindByIDForUpdate", ctx, int64(77)).Return(existing, nil)

	_, err := command.NewUpdateCatalogCommand(catalogs, mocks.NewMockListingRepository(t), mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.UpdateCatalogInput{Actor: broker(6), CatalogID: 77})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Equal(t, authz.ReasonManageOwnCatalog, appErr.Message)
}

func TestDeleteCatalogCommand_Execute_SuperuserDeletesAnyCatalog(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)
	existing := entity.NewCatalog(5, entity.CatalogAttributes{Name: "Old"})
	existing.ID = 77
	catalogs.On("FindByID", ctx, int64(77)).Return(existing, nil)
	catalogs.On("Delete", ctx, int64(77)).Return(nil)

	err := command.NewDeleteCatalogCommand(catalogs, service.NewAccessService(nil, nil)).
		Execute(ctx, command.DeleteCatalogInput{Actor: authz.Principal{UserID: 1, IsSuperuser: true}, CatalogID: 77})

	require.NoError(t, err)
}

func TestCreateCatalogCommand_Execute_CarriesListingNotes(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)
	listings := mocks.NewMockListingRepository(t)

	listings.On("ExistingIDs", ctx, []int64{3, 1}).Return([]int64{1, 3}, nil)
	catalogs.On("Create", ctx, mock.AnythingOfType("*entity.Catalog")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Catalog).ID = 78 }).
		Return(nil)
	catalogs.On("ReplaceListings", ctx, int64(78), mock.MatchedBy(func(ls []entity.CatalogListing) bool {
		return len(ls) == 2 && ls[0].Notes == "sea view" && ls[1].Notes == ""
	})).Return(nil)

	out, err := command.NewCreateCatalogCommand(catalogs, listings, mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.CreateCatalogInput{
			Actor:        broker(5),
			Attributes:   entity.CatalogAttributes{Name: "Noted"},
			ListingIDs:   []int64{3, 1},
			ListingNotes: map[int64]string{3: "sea view"},
		})

	require.NoError(t, err)
	assert.Equal(t, "sea view", out.Listings[0].Notes)
}

func TestCreateCatalogCommand_Execute_NoteForUnlistedObject(t *testing.T) {
	_, err := command.NewCreateCatalogCommand(mocks.NewMockCatalogRepository(t), mocks.NewMockListingRepository(t), mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(context.Background(), command.CreateCatalogInput{
			Actor:        broker(5),
			Attributes:   entity.CatalogAttributes{Name: "x"},
			ListingIDs:   []int64{1},
			ListingNotes: map[int64]string{9: "stray", 4: "stray too"},
		})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "catalog_object_notes", appErr.Details[0].Field)
	assert.Equal(t, `Object "4" is not in catalog_objects.`, appErr.Details[0].Message)
}

func TestUpdateCatalogCommand_Execute_NotesRequireObjects(t *testing.T) {
	ctx := context.Background()
	catalogs := mocks.NewMockCatalogRepository(t)

	existing := entity.NewCatalog(5, entity.CatalogAttributes{Name: "Old"})
	existing.ID = 77
	catalogs.On("FindByIDForUpdate", ctx, int64(77)).Return(existing, nil)
	catalogs.On("Update", ctx, existing).Return(nil)

	_, err := command.NewUpdateCatalogCommand(catalogs, mocks.NewMockListingRepository(t), mocks.NewMockTransactionManager(t), service.NewAccessService(nil, nil)).
		Execute(ctx, command.UpdateCatalogInput{
			Actor:        broker(5),
			CatalogID:    77,
			Attributes:   entity.CatalogAttributes{Name: "Old"},
			ListingNotes: map[int64]string{1: "orphan"},
		})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "catalog_object_notes", appErr.Details[0].Field)
	assert.Equal(t, command.MsgNotesWithoutObjects, appErr.Details[0].Message)
	catalogs.AssertNotCalled(t, "ReplaceListings", mock.Anything, mock.Anything, mock.Anything)
}
