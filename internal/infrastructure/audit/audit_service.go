package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// writeTimeout は1件の書き込みに許す時間です
const writeTimeout = 5 * time.Second

// Recorder は監査ログの書き込み結果を記録します
type Recorder interface {
	RecordAuditDropped()
	RecordAuditWritten()
}

// Service は監査ログの非同期書き込みサービスです
// 単一のゴルーチンがバッファから読み取り永続化します
type Service struct {
	repo     repository.AuditLogRepository
	recorder Recorder
	entries  chan service.AuditEntry
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewService は新しいAudit Serviceを作成します
func NewService(repo repository.AuditLogRepository, bufferSize int, recorder Recorder) *Service {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	s := &Service{
		repo:     repo,
		recorder: recorder,
		entries:  make(chan service.AuditEntry, bufferSize),
		done:     make(chan struct{}),
	}
	go s.processLoop()
	return s
}

// Log は監査ログエントリをキューに追加します（非ブロッキング）
// リクエストIDが未設定の場合はコンテキストから補完します
func (s *Service) Log(ctx context.Context, entry service.AuditEntry) {
	if entry.RequestID == "" {
		entry.RequestID = logger.RequestIDFromContext(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.entries <- entry:
	default:
		if s.recorder != nil {
			s.recorder.RecordAuditDropped()
		}
		slog.Warn("audit log buffer full, dropping entry",
			"action", string(entry.Action),
			"resource_type", string(entry.ResourceType),
		)
	}
}

func (s *Service) processLoop() {
	defer close(s.done)
	for entry := range s.entries {
		s.write(entry)
	}
}

func (s *Service) write(entry service.AuditEntry) {
	log := &entity.AuditLog{
		ID:           uuid.New(),
		UserID:       entry.UserID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Details:      entry.Details,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
		RequestID:    entry.RequestID,
		CreatedAt:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, log); err != nil {
		slog.Error("failed to write audit log",
			"error", err,
			"action", string(entry.Action),
			"resource_type", string(entry.ResourceType),
		)
		return
	}
	if s.recorder != nil {
		s.recorder.RecordAuditWritten()
	}
}

// Shutdown は受付を止め、バッファに残ったエントリを書き終えてから戻ります
func (s *Service) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.entries)
	s.mu.Unlock()
	<-s.done
}

// インターフェースの実装を保証
var _ service.AuditService = (*Service)(nil)
