package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/internal/usecase/authz/query"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil/mocks"
)

func TestListRoleHistoryQuery_Execute_ClampsPagination(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockRoleAssignmentRepository(t)
	history := []*entity.RoleAssignment{{ID: 2, TargetUserID: 9, RoleName: "broker"}, {ID: 1, TargetUserID: 9, RoleName: "buyer"}}

	repo.On("ListByTargetUserID", ctx, int64(9), 100, 0).Return(history, nil)
	repo.On("CountByTargetUserID", ctx, int64(9)).Return(2, nil)

	admin := authz.RoleAdmin
	out, err := query.NewListRoleHistoryQuery(repo, service.NewAccessService(nil, nil)).Execute(ctx, query.ListRoleHistoryInput{
		Actor:  authz.Principal{UserID: 1, Profile: &authz.ProfileRef{Role: &admin}},
		UserID: 9,
		Limit:  1000,
		Offset: -3,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 100, out.Limit)
	assert.Equal(t, 0, out.Offset)
	assert.Equal(t, "broker", out.Assignments[0].RoleName)
}

func TestListRoleHistoryQuery_Execute_RequiresAdminOrModerator(t *testing.T) {
	buyer := authz.RoleBuyer
	_, err := query.NewListRoleHistoryQuery(mocks.NewMockRoleAssignmentRepository(t), service.NewAccessService(nil, nil)).Execute(context.Background(), query.ListRoleHistoryInput{
		Actor:  authz.Principal{UserID: 1, Profile: &authz.ProfileRef{Role: &buyer}},
		UserID: 9,
	})

	assert.True(t, apperror.IsForbidden(err))
}

func TestListRolesQuery_Execute(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockRoleRepository(t)
	repo.On("List", ctx).Return([]*entity.Role{{ID: 1, Name: authz.RoleAdmin}, {ID: 2, Name: authz.RoleBroker}}, nil)

	roles, err := query.NewListRolesQuery(repo).Execute(ctx)

	require.NoError(t, err)
	assert.Len(t, roles, 2)
}
