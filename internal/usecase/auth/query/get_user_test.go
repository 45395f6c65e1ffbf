package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/usecase/auth/query"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func newUser(id int64) *entity.User {
	return &entity.User{ID: id, Email: valueobject.ReconstructEmail("me@example.com"), IsActive: true}
}

func TestGetUserQuery_Execute_ReturnsUserWithProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	profileRepo := mocks.NewMockUserProfileRepository(t)

	profile := entity.NewUserProfile(5, &entity.Role{ID: 3, Name: authz.RoleBuyer})
	userRepo.On("FindByID", ctx, int64(5)).Return(newUser(5), nil)
	profileRepo.On("FindByUserID", ctx, int64(5)).Return(profile, nil)

	out, err := query.NewGetUserQuery(userRepo, profileRepo).Execute(ctx, query.GetUserInput{UserID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(5), out.User.ID)
	assert.Same(t, profile, out.Profile)
}

func TestGetUserQuery_Execute_MissingProfileIsNotAnError(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	profileRepo := mocks.NewMockUserProfileRepository(t)

	userRepo.On("FindByID", ctx, int64(6)).Return(newUser(6), nil)
	profileRepo.On("FindByUserID", ctx, int64(6)).Return(nil, apperror.NewNotFoundError("UserProfile"))

	out, err := query.NewGetUserQuery(userRepo, profileRepo).Execute(ctx, query.GetUserInput{UserID: 6})

	require.NoError(t, err)
	assert.Nil(t, out.Profile)
}

func TestGetUserQuery_Execute_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByID", ctx, int64(7)).Return(nil, apperror.NewNotFoundError("User"))

	_, err := query.NewGetUserQuery(userRepo, mocks.NewMockUserProfileRepository(t)).Execute(ctx, query.GetUserInput{UserID: 7})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "User not found", appErr.Message)
}
