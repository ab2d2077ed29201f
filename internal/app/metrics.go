package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/message"
)

// Metrics counts the messages a session dispatches.
type Metrics struct {
	applied    atomic.Uint64
	suppressed atomic.Uint64
	modified   atomic.Uint64
	undos      atomic.Uint64
	redos      atomic.Uint64

	applyTotalNs atomic.Int64
	applyMaxNs   atomic.Int64

	contextsEntered atomic.Uint64
	commits         atomic.Uint64
	cancels         atomic.Uint64
	clipboardErrors atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordApply records one applied message, its result and how long the
// state took.
func (m *Metrics) RecordApply(msg message.Message, res engine.Result, duration time.Duration) {
	ns := duration.Nanoseconds()
	m.applied.Add(1)
	m.applyTotalNs.Add(ns)

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.applyMaxNs.Load()
		if ns <= old {
			break
		}
		if m.applyMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}

	if res.Suppressed {
		m.suppressed.Add(1)
	}
	if res.Modified() {
		m.modified.Add(1)
	}
	if res.TextChanged {
		switch msg.Kind {
		case message.KindUndo:
			m.undos.Add(1)
		case message.KindRedo:
			m.redos.Add(1)
		}
	}
}

// RecordEnter records a context being entered.
func (m *Metrics) RecordEnter() {
	m.contextsEntered.Add(1)
}

// RecordCommit records a modal commit.
func (m *Metrics) RecordCommit() {
	m.commits.Add(1)
}

// RecordCancel records a modal cancel.
func (m *Metrics) RecordCancel() {
	m.cancels.Add(1)
}

// RecordClipboardError records a failed clipboard read or write.
func (m *Metrics) RecordClipboardError() {
	m.clipboardErrors.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	applied := m.applied.Load()

	var avgApplyNs int64
	if applied > 0 {
		avgApplyNs = m.applyTotalNs.Load() / int64(applied)
	}

	return MetricsSnapshot{
		Uptime:          time.Since(m.startTime),
		Applied:         applied,
		Suppressed:      m.suppressed.Load(),
		Modified:        m.modified.Load(),
		Undos:           m.undos.Load(),
		Redos:           m.redos.Load(),
		AvgApplyNs:      avgApplyNs,
		MaxApplyNs:      m.applyMaxNs.Load(),
		ContextsEntered: m.contextsEntered.Load(),
		Commits:         m.commits.Load(),
		Cancels:         m.cancels.Load(),
		ClipboardErrors: m.clipboardErrors.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.applied.Store(0)
	m.suppressed.Store(0)
	m.modified.Store(0)
	m.undos.Store(0)
	m.redos.Store(0)
	m.applyTotalNs.Store(0)
	m.applyMaxNs.Store(0)
	m.contextsEntered.Store(0)
	m.commits.Store(0)
	m.cancels.Store(0)
	m.clipboardErrors.Store(0)
	m.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime          time.Duration
	Applied         uint64
	Suppressed      uint64
	Modified        uint64
	Undos           uint64
	Redos           uint64
	AvgApplyNs      int64
	MaxApplyNs      int64
	ContextsEntered uint64
	Commits         uint64
	Cancels         uint64
	ClipboardErrors uint64
}

// SuppressionRate returns the percentage of messages the constraints
// turned into no-ops.
func (s MetricsSnapshot) SuppressionRate() float64 {
	if s.Applied == 0 {
		return 0
	}
	return float64(s.Suppressed) / float64(s.Applied) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
