package congsec

import (
	"context"
	"time"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/password"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/session"
)

// Engine defines a public type used by congsec APIs.
//
// Engine instances are intended to be configured during initialization
// through [Builder.Build] and then treated as immutable. Operations run
// to completion one at a time in the single-threaded client model; the
// engine itself holds no mutable state outside the record store.
type Engine struct {
	config   Config
	records  *records.Store
	sessions *session.Store
	mailer   Mailer
	hasher   *password.Hasher
	audit    *auditDispatcher
	metrics  *Metrics

	// now is swapped in tests; everything time-dependent reads it.
	now func() time.Time
}

// Close flushes and stops the audit dispatcher. The engine is unusable
// afterwards.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many sink deliveries the dispatcher discarded
// under backpressure. The persisted trail is unaffected by drops.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now()
}

// Users returns the persisted user collection for the UI collaborators.
func (e *Engine) Users(ctx context.Context) ([]User, error) {
	if e == nil || e.records == nil {
		return nil, ErrEngineNotReady
	}
	return e.records.Users(ctx)
}

// AuditLog returns the persisted audit trail, newest first.
func (e *Engine) AuditLog(ctx context.Context) ([]AuditLogEntry, error) {
	if e == nil || e.records == nil {
		return nil, ErrEngineNotReady
	}
	return e.records.AuditLogs(ctx)
}
