package command_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/usecase/auth/command"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func TestLogoutCommand_Execute_BlacklistsTokenAndDeletesSession(t *testing.T) {
	ctx := context.Background()
	expiry := time.Now().Add(15 * time.Minute)

	sessionRepo := mocks.NewMockSessionRepository(t)
	blacklist := mocks.NewMockTokenBlacklist(t)
	blacklist.On("Add", ctx, "jti-1", expiry).Return(nil)
	sessionRepo.On("Delete", ctx, "sess-1").Return(nil)

	err := command.NewLogoutCommand(sessionRepo, blacklist).Execute(ctx, command.LogoutInput{
		SessionID:   "sess-1",
		TokenID:     "jti-1",
		TokenExpiry: expiry,
	})

	require.NoError(t, err)
}

func TestLogoutCommand_Execute_BlacklistFailure_KeepsSession(t *testing.T) {
	ctx := context.Background()
	sessionRepo := mocks.NewMockSessionRepository(t)
	blacklist := mocks.NewMockTokenBlacklist(t)
	blacklist.On("Add", ctx, "jti-1", time.Time{}).Return(errors.New("redis down"))

	err := command.NewLogoutCommand(sessionRepo, blacklist).Execute(ctx, command.LogoutInput{SessionID: "sess-1", TokenID: "jti-1"})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	sessionRepo.AssertNotCalled(t, "Delete")
}
