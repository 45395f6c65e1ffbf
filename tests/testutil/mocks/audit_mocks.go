package mocks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

// MockAuditLogRepository is a mock implementation of repository.AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func NewMockAuditLogRepository(t *testing.T) *MockAuditLogRepository {
	m := &MockAuditLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.AuditLog, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// RecordingAuditService keeps every entry passed to Log
type RecordingAuditService struct {
	mu      sync.Mutex
	entries []service.AuditEntry
}

func (s *RecordingAuditService) Log(_ context.Context, entry service.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of the recorded entries
func (s *RecordingAuditService) Entries() []service.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]service.AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Actions returns the recorded actions in order
func (s *RecordingAuditService) Actions() []entity.AuditAction {
	entries := s.Entries()
	out := make([]entity.AuditAction, len(entries))
	for i, e := range entries {
		out[i] = e.Action
	}
	return out
}
