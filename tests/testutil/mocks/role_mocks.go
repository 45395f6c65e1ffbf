package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// MockRoleRepository is a mock implementation of repository.RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func NewMockRoleRepository(t *testing.T) *MockRoleRepository {
	m := &MockRoleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRoleRepository) GetOrCreate(ctx context.Context, name authz.RoleName) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name authz.RoleName) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByNames(ctx context.Context, names []authz.RoleName) ([]*entity.Role, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Role), args.Error(1)
}

// MockRoleAssignmentRepository is a mock implementation of repository.RoleAssignmentRepository
type MockRoleAssignmentRepository struct {
	mock.Mock
}

func NewMockRoleAssignmentRepository(t *testing.T) *MockRoleAssignmentRepository {
	m := &MockRoleAssignmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRoleAssignmentRepository) Create(ctx context.Context, a *entity.RoleAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRoleAssignmentRepository) ListByTargetUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.RoleAssignment, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RoleAssignment), args.Error(1)
}

func (m *MockRoleAssignmentRepository) CountByTargetUserID(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockRoleAssignmentRecorder records role assignment metrics
type MockRoleAssignmentRecorder struct {
	mock.Mock
}

func NewMockRoleAssignmentRecorder(t *testing.T) *MockRoleAssignmentRecorder {
	m := &MockRoleAssignmentRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRoleAssignmentRecorder) RecordRoleAssignment(role string) {
	m.Called(role)
}
