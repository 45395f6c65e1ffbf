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
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/usecase/auth/command"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func TestRegisterCommand_Execute_CreatesUserAndProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	profileRepo := mocks.NewMockUserProfileRepository(t)
	roleRepo := mocks.NewMockRoleRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	broker := newRole(2, authz.RoleBroker)
	userRepo.On("Exists", ctx, mock.AnythingOfType("valueobject.Email")).Return(false, nil)
	roleRepo.On("FindByName", ctx, authz.RoleBroker).Return(broker, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.User).ID = 42 }).
		Return(nil)
	profileRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.UserID == 42 && p.Role == broker && p.VerificationStatus == valueobject.VerificationPending
	})).Return(nil)

	cmd := command.NewRegisterCommand(userRepo, profileRepo, roleRepo, txManager)
	out, err := cmd.Execute(ctx, command.RegisterInput{Email: "Broker@Example.com", Password: testPassword, Role: "broker"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.User.ID)
	assert.False(t, out.User.IsStaff)
	assert.True(t, out.User.IsActive)
	assert.True(t, out.User.Password().Verify(testPassword))
}

func TestRegisterCommand_Execute_StaffRoleSetsIsStaff(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	profileRepo := mocks.NewMockUserProfileRepository(t)
	roleRepo := mocks.NewMockRoleRepository(t)
	txManager := mocks.NewMockTransactionManager(t)

	userRepo.On("Exists", ctx, mock.Anything).Return(false, nil)
	roleRepo.On("FindByName", ctx, authz.RoleModerator).Return(newRole(5, authz.RoleModerator), nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsStaff })).Return(nil)
	profileRepo.On("Create", ctx, mock.Anything).Return(nil)

	cmd := command.NewRegisterCommand(userRepo, profileRepo, roleRepo, txManager)
	out, err := cmd.Execute(ctx, command.RegisterInput{Email: "mod@example.com", Password: testPassword, Role: "moderator"})

	require.NoError(t, err)
	assert.True(t, out.User.IsStaff)
}

func TestRegisterCommand_Execute_UnknownRole_ReturnsFieldError(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	roleRepo := mocks.NewMockRoleRepository(t)

	userRepo.On("Exists", ctx, mock.Anything).Return(false, nil)
	roleRepo.On("FindByName", ctx, authz.RoleName("wizard")).Return(nil, apperror.NewNotFoundError("Role"))

	cmd := command.NewRegisterCommand(userRepo, mocks.NewMockUserProfileRepository(t), roleRepo, mocks.NewMockTransactionManager(t))
	_, err := cmd.Execute(ctx, command.RegisterInput{Email: "a@example.com", Password: testPassword, Role: "wizard"})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeValidationError, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "role", appErr.Details[0].Field)
	assert.Equal(t, "unknown role: wizard", appErr.Details[0].Message)
}

func TestRegisterCommand_Execute_CollectsAllFieldErrors(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	roleRepo := mocks.NewMockRoleRepository(t)

	userRepo.On("Exists", ctx, mock.Anything).Return(true, nil)

	cmd := command.NewRegisterCommand(userRepo, mocks.NewMockUserProfileRepository(t), roleRepo, mocks.NewMockTransactionManager(t))
	_, err := cmd.Execute(ctx, command.RegisterInput{Email: "taken@example.com", Password: "short", Role: ""})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	fields := make([]string, 0, len(appErr.Details))
	for _, d := range appErr.Details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"email", "password", "role"}, fields)
	assert.Equal(t, "user with this email already exists", appErr.Details[0].Message)
}

func TestRegisterCommand_Execute_ProfileFailure_ReturnsError(t *testing.T) {
	ctx := context.Background()
	userRepo := mocks.NewMockUserRepository(t)
	profileRepo := mocks.NewMockUserProfileRepository(t)
	roleRepo := mocks.NewMockRoleRepository(t)

	userRepo.On("Exists", ctx, mock.Anything).Return(false, nil)
	roleRepo.On("FindByName", ctx, authz.RoleBuyer).Return(newRole(1, authz.RoleBuyer), nil)
	userRepo.On("Create", ctx, mock.Anything).Return(nil)
	profileRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	cmd := command.NewRegisterCommand(userRepo, profileRepo, roleRepo, mocks.NewMockTransactionManager(t))
	_, err := cmd.Execute(ctx, command.RegisterInput{Email: "b@example.com", Password: testPassword, Role: "buyer"})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInternalError, appErr.Code)
}
