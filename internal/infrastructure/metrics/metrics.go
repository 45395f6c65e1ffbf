// Package metrics はPrometheusメトリクスを提供します
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mrewrin/LeadTransfer/internal/domain/service"
)

// DefaultNamespace はメトリクス名の既定プレフィックスです
const DefaultNamespace = "leadtransfer"

// Metrics はアプリケーション固有のメトリクスを保持します
type Metrics struct {
	registry        *prometheus.Registry
	authzDecisions  *prometheus.CounterVec
	roleAssignments *prometheus.CounterVec
	auditDropped    prometheus.Counter
	auditWritten    prometheus.Counter
}

// New は新しいレジストリにメトリクスを登録して返します
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authzDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authz_decisions_total",
			Help:      "Authorization decisions by resource, action and outcome.",
		}, []string{"resource", "action", "decision"}),
		roleAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_assignments_total",
			Help:      "Successful role assignments by role name.",
		}, []string{"role"}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_dropped_total",
			Help:      "Audit entries dropped because the buffer was full.",
		}),
		auditWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_written_total",
			Help:      "Audit entries persisted.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.authzDecisions,
		m.roleAssignments,
		m.auditDropped,
		m.auditWritten,
	)
	return m
}

// Registry はHTTPメトリクスとエクスポートに使うレジストリを返します
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordAuthzDecision は認可判定を記録します
func (m *Metrics) RecordAuthzDecision(resource, action, decision string) {
	m.authzDecisions.WithLabelValues(resource, action, decision).Inc()
}

// RecordRoleAssignment はロール割り当てを記録します
func (m *Metrics) RecordRoleAssignment(role string) {
	m.roleAssignments.WithLabelValues(role).Inc()
}

// RecordAuditDropped は破棄された監査ログを記録します
func (m *Metrics) RecordAuditDropped() {
	m.auditDropped.Inc()
}

// RecordAuditWritten は永続化された監査ログを記録します
func (m *Metrics) RecordAuditWritten() {
	m.auditWritten.Inc()
}

var _ service.DecisionRecorder = (*Metrics)(nil)
