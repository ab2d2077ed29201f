package app

import (
	"testing"
	"time"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/message"
)

func TestMetrics_RecordApply(t *testing.T) {
	m := NewMetrics()

	m.RecordApply(message.InsertChar('a'), engine.Result{TextChanged: true, CursorsChanged: true}, 2*time.Millisecond)
	m.RecordApply(message.InsertNewline, engine.Result{Suppressed: true, Confirm: true}, time.Millisecond)
	m.RecordApply(message.Undo, engine.Result{TextChanged: true}, 3*time.Millisecond)
	m.RecordApply(message.Redo, engine.Result{}, time.Millisecond)

	s := m.Snapshot()
	if s.Applied != 4 {
		t.Errorf("Applied = %d, want 4", s.Applied)
	}
	if s.Suppressed != 1 {
		t.Errorf("Suppressed = %d, want 1", s.Suppressed)
	}
	if s.Modified != 2 {
		t.Errorf("Modified = %d, want 2", s.Modified)
	}
	if s.Undos != 1 || s.Redos != 0 {
		t.Errorf("Undos, Redos = %d, %d, want 1, 0", s.Undos, s.Redos)
	}
	if s.MaxApplyNs != (3 * time.Millisecond).Nanoseconds() {
		t.Errorf("MaxApplyNs = %d, want 3ms", s.MaxApplyNs)
	}
	if want := (7 * time.Millisecond).Nanoseconds() / 4; s.AvgApplyNs != want {
		t.Errorf("AvgApplyNs = %d, want %d", s.AvgApplyNs, want)
	}
	if got := s.SuppressionRate(); got != 25 {
		t.Errorf("SuppressionRate() = %v, want 25", got)
	}
}

func TestMetrics_ContextCountersAndReset(t *testing.T) {
	m := NewMetrics()
	m.RecordEnter()
	m.RecordEnter()
	m.RecordCommit()
	m.RecordCancel()
	m.RecordClipboardError()

	s := m.Snapshot()
	if s.ContextsEntered != 2 || s.Commits != 1 || s.Cancels != 1 || s.ClipboardErrors != 1 {
		t.Errorf("snapshot = %+v", s)
	}

	m.Reset()
	if s := m.Snapshot(); s.ContextsEntered != 0 || s.Applied != 0 {
		t.Errorf("after Reset snapshot = %+v", s)
	}
}

func TestMetricsSnapshot_EmptyRates(t *testing.T) {
	var s MetricsSnapshot
	if s.SuppressionRate() != 0 {
		t.Errorf("SuppressionRate() = %v, want 0", s.SuppressionRate())
	}
}
