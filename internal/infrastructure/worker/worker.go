package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job はスケジュール実行ジョブを定義します
type Job struct {
	Name string
	// Spec はcron式または "@every 5m" のような記述子です
	Spec string
	Fn   func(ctx context.Context) error
}

// Manager はバックグラウンドジョブのスケジューラを管理します
type Manager struct {
	cron   *cron.Cron
	jobs   map[string]Job
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewManager は新しいWorker Managerを作成します
// 実行中のジョブが終わっていない場合、次の起動はスキップされます
func NewManager() *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	log := slogCronLogger{}
	return &Manager{
		cron: cron.New(cron.WithChain(
			cron.Recover(log),
			cron.SkipIfStillRunning(log),
		)),
		jobs:   make(map[string]Job),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register はジョブを登録します
func (m *Manager) Register(job Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.jobs[job.Name]; dup {
		return fmt.Errorf("job %q already registered", job.Name)
	}
	if _, err := m.cron.AddFunc(job.Spec, func() { m.run(job) }); err != nil {
		return fmt.Errorf("invalid schedule for job %q: %w", job.Name, err)
	}
	m.jobs[job.Name] = job
	return nil
}

// Start はスケジューラを開始します
func (m *Manager) Start() {
	m.cron.Start()
	slog.Info("worker manager started", "jobs", len(m.jobs))
}

// RunNow は登録済みジョブを即座に同期実行します
func (m *Manager) RunNow(name string) error {
	m.mu.Lock()
	job, ok := m.jobs[name]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("job %q not registered", name)
	}
	return job.Fn(m.ctx)
}

func (m *Manager) run(job Job) {
	start := time.Now()
	if err := job.Fn(m.ctx); err != nil {
		slog.Error("worker job failed", "job", job.Name, "error", err)
		return
	}
	slog.Debug("worker job completed", "job", job.Name, "duration", time.Since(start))
}

// Shutdown は新規起動を止め、実行中のジョブの終了を待ちます
func (m *Manager) Shutdown(timeout time.Duration) {
	slog.Info("shutting down worker manager...")
	stopped := m.cron.Stop()
	m.cancel()

	select {
	case <-stopped.Done():
		slog.Info("worker manager stopped gracefully")
	case <-time.After(timeout):
		slog.Warn("worker manager shutdown timed out")
	}
}

// slogCronLogger はcronのログをslogに流します
type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
