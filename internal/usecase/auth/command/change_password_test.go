package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/usecase/auth/command"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func TestChangePasswordCommand_Execute_UpdatesHashAndRevokesSessions(t *testing.T) {
	ctx := context.Background()
	user := newActiveUser(t, 31, "buyer@example.com")

	userRepo := mocks.NewMockUserRepository(t)
	sessionRepo := mocks.NewMockSessionRepository(t)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Password().Verify("NewPassword456")
	})).Return(nil)
	sessionRepo.On("DeleteByUserID", ctx, user.ID).Return(nil)

	err := command.NewChangePasswordCommand(userRepo, sessionRepo).Execute(ctx, command.ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: testPassword,
		NewPassword: "NewPassword456",
	})

	require.NoError(t, err)
	assert.False(t, user.Password().Verify(testPassword))
}

func TestChangePasswordCommand_Execute_WrongOldPassword(t *testing.T) {
	ctx := context.Background()
	user := newActiveUser(t, 32, "buyer@example.com")

	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	err := command.NewChangePasswordCommand(userRepo, mocks.NewMockSessionRepository(t)).Execute(ctx, command.ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "NotMyPassword1",
		NewPassword: "NewPassword456",
	})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeValidationError, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "old_password", appErr.Details[0].Field)
	assert.Equal(t, command.MsgOldPasswordIncorrect, appErr.Details[0].Message)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangePasswordCommand_Execute_WeakNewPassword(t *testing.T) {
	ctx := context.Background()
	user := newActiveUser(t, 33, "buyer@example.com")

	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	err := command.NewChangePasswordCommand(userRepo, mocks.NewMockSessionRepository(t)).Execute(ctx, command.ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: testPassword,
		NewPassword: "short",
	})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "new_password", appErr.Details[0].Field)
}
