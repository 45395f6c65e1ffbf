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
	"github.com/mrewrin/LeadTransfer/internal/usecase/authz/command"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func TestVerifyBrokerCommand_Execute_StaffMarksUserVerified(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	user := &entity.User{ID: 70, IsActive: true}

	userRepo.On("FindByID", ctx, int64(70)).Return(user, nil)
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsVerified })).Return(nil)

	out, err := command.NewVerifyBrokerCommand(userRepo, service.NewAccessService(nil, nil)).Execute(ctx, command.VerifyBrokerInput{
		Actor:  authz.Principal{UserID: 1, IsStaff: true},
		UserID: 70,
	})

	require.NoError(t, err)
	assert.True(t, out.IsVerified)
}

func TestVerifyBrokerCommand_Execute_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByID", ctx, int64(71)).Return(nil, apperror.NewNotFoundError("User"))

	_, err := command.NewVerifyBrokerCommand(userRepo, service.NewAccessService(nil, nil)).Execute(ctx, command.VerifyBrokerInput{
		Actor:  authz.Principal{UserID: 1, IsSuperuser: true},
		UserID: 71,
	})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "User not found", appErr.Message)
}

func TestVerifyBrokerCommand_Execute_NonStaffForbidden(t *testing.T) {
	_, err := command.NewVerifyBrokerCommand(mocks.NewMockUserRepository(t), service.NewAccessService(nil, nil)).Execute(context.Background(), command.VerifyBrokerInput{
		Actor:  principalWithRole(2, authz.RoleAdmin),
		UserID: 70,
	})

	assert.True(t, apperror.IsForbidden(err))
}
