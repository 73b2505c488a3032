// Package metrics exposes audit log counters to Prometheus.
package metrics

import (
	"sync"

	"admin-audit-log/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MaxActionTypeLabels bounds the distinct action_type series. Action
	// types are caller-supplied free text.
	MaxActionTypeLabels = 100
	// MaxActionTypeLabelLen is the longest action type kept as a label.
	MaxActionTypeLabelLen = 64
	// OtherActionType is the label for action types past either bound.
	OtherActionType = "other"
)

// Metrics implements ports.AuditMetrics.
type Metrics struct {
	Appends         *prometheus.CounterVec
	AppendFailures  *prometheus.CounterVec
	VerifyRuns      prometheus.Counter
	InvalidRecords  prometheus.Gauge
	RecordsVerified prometheus.Gauge

	mu          sync.Mutex
	actionTypes map[string]struct{}
}

// New registers the audit metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Appends: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_audit_appends_total",
			Help: "Total number of admin actions appended to the audit log",
		}, []string{"action_type"}),
		AppendFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_audit_append_failures_total",
			Help: "Total number of rejected or failed appends, by pipeline stage",
		}, []string{"stage"}),
		VerifyRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "admin_audit_verify_runs_total",
			Help: "Total number of full-log integrity sweeps",
		}),
		InvalidRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "admin_audit_verify_invalid_records",
			Help: "Invalid records found by the most recent integrity sweep",
		}),
		RecordsVerified: factory.NewGauge(prometheus.GaugeOpts{
			Name: "admin_audit_records_verified",
			Help: "Records checked by the most recent integrity sweep",
		}),
		actionTypes: make(map[string]struct{}),
	}
}

// AppendSucceeded counts one appended record.
func (m *Metrics) AppendSucceeded(actionType string) {
	m.Appends.WithLabelValues(m.actionTypeLabel(actionType)).Inc()
}

// actionTypeLabel admits the first MaxActionTypeLabels short action types
// and folds the rest into OtherActionType.
func (m *Metrics) actionTypeLabel(actionType string) string {
	if len(actionType) > MaxActionTypeLabelLen {
		return OtherActionType
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.actionTypes[actionType]; ok {
		return actionType
	}
	if len(m.actionTypes) >= MaxActionTypeLabels {
		return OtherActionType
	}
	m.actionTypes[actionType] = struct{}{}
	return actionType
}

// AppendFailed counts one append that stopped at stage.
func (m *Metrics) AppendFailed(stage string) {
	m.AppendFailures.WithLabelValues(stage).Inc()
}

// VerifyCompleted records the outcome of a sweep.
func (m *Metrics) VerifyCompleted(report *domain.IntegrityReport) {
	m.VerifyRuns.Inc()
	m.InvalidRecords.Set(float64(report.Invalid))
	m.RecordsVerified.Set(float64(report.Total))
}
