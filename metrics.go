package congsec

import "sync/atomic"

// MetricID identifies one in-process counter.
type MetricID uint8

const (
	// MetricLoginSuccess is an exported constant or variable used by the security engine.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure is an exported constant or variable used by the security engine.
	MetricLoginFailure
	// MetricLoginLockout is an exported constant or variable used by the security engine.
	MetricLoginLockout
	// MetricSessionIssued is an exported constant or variable used by the security engine.
	MetricSessionIssued
	// MetricSessionExpired is an exported constant or variable used by the security engine.
	MetricSessionExpired
	// MetricSessionInvalidated is an exported constant or variable used by the security engine.
	MetricSessionInvalidated
	// MetricLogout is an exported constant or variable used by the security engine.
	MetricLogout
	// MetricRegistrationSuccess is an exported constant or variable used by the security engine.
	MetricRegistrationSuccess
	// MetricRegistrationEmailFailed is an exported constant or variable used by the security engine.
	MetricRegistrationEmailFailed
	// MetricEmailResendSuccess is an exported constant or variable used by the security engine.
	MetricEmailResendSuccess
	// MetricEmailResendBlocked is an exported constant or variable used by the security engine.
	MetricEmailResendBlocked
	// MetricEmailResendError is an exported constant or variable used by the security engine.
	MetricEmailResendError
	// MetricPasswordResetRequest is an exported constant or variable used by the security engine.
	MetricPasswordResetRequest
	// MetricUserUpdate is an exported constant or variable used by the security engine.
	MetricUserUpdate

	metricIDCount
)

// Metrics holds atomic counters for the engine's security events. When
// disabled every operation is a no-op.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a Metrics instance configured by cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Snapshot returns a deep copy of all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricIDCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
