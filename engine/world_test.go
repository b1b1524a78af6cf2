package engine

import (
	"testing"

	"github.com/JulioGmz89/wave-director/event"
)

// recordingSystem captures dispatch and update ordering
type recordingSystem struct {
	name     string
	priority int
	types    []event.EventType
	log      *[]string
}

func (r *recordingSystem) Name() string                  { return r.name }
func (r *recordingSystem) Priority() int                 { return r.priority }
func (r *recordingSystem) EventTypes() []event.EventType { return r.types }

func (r *recordingSystem) HandleEvent(ev event.GameEvent) {
	*r.log = append(*r.log, r.name+":event")
}

func (r *recordingSystem) Update(dt float64) {
	*r.log = append(*r.log, r.name+":update")
}

func TestTickDispatchesBeforeUpdate(t *testing.T) {
	w := NewWorld()
	var log []string

	a := &recordingSystem{name: "a", priority: 10, types: []event.EventType{event.EventEnemyKilled}, log: &log}
	b := &recordingSystem{name: "b", priority: 20, types: []event.EventType{event.EventEnemyKilled}, log: &log}
	w.AddSystem(a)
	w.AddSystem(b)

	w.PushEvent(event.EventEnemyKilled, nil)
	w.Tick(0.016)

	want := []string{"a:event", "b:event", "a:update", "b:update"}
	if len(log) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("ordering mismatch at %d: got %v, want %v", i, log, want)
		}
	}
}

func TestSystemsOrderedByPriority(t *testing.T) {
	w := NewWorld()
	var log []string

	// Registered out of order on purpose
	w.AddSystem(&recordingSystem{name: "late", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "mid", priority: 20, log: &log})

	w.Tick(0.016)

	want := []string{"early:update", "mid:update", "late:update"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("priority order violated: got %v", log)
		}
	}
}

func TestResetDropsPendingEvents(t *testing.T) {
	w := NewWorld()
	var log []string
	s := &recordingSystem{
		name:     "s",
		priority: 10,
		types:    []event.EventType{event.EventEnemyKilled, event.EventGameReset},
		log:      &log,
	}
	w.AddSystem(s)

	w.PushEvent(event.EventEnemyKilled, nil)
	w.Reset()

	// Reset delivers exactly one synchronous GameReset; the stale kill is gone
	if len(log) != 1 || log[0] != "s:event" {
		t.Fatalf("expected single reset dispatch, got %v", log)
	}

	log = nil
	w.Tick(0.016)
	for _, entry := range log {
		if entry == "s:event" {
			t.Error("stale event survived reset")
		}
	}
}

func TestFrameNumberAdvances(t *testing.T) {
	w := NewWorld()
	if w.FrameNumber() != 0 {
		t.Fatalf("fresh world frame = %d, want 0", w.FrameNumber())
	}
	w.Tick(0.016)
	w.Tick(0.016)
	if w.FrameNumber() != 2 {
		t.Errorf("after two ticks frame = %d, want 2", w.FrameNumber())
	}
	w.Reset()
	if w.FrameNumber() != 0 {
		t.Errorf("after reset frame = %d, want 0", w.FrameNumber())
	}
}

func TestHandlerCount(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "x", priority: 1, types: []event.EventType{event.EventWaveStarted}, log: &log})
	if got := w.HandlerCount(event.EventWaveStarted); got != 1 {
		t.Errorf("HandlerCount = %d, want 1", got)
	}
	if got := w.HandlerCount(event.EventBreatherEnded); got != 0 {
		t.Errorf("HandlerCount for unregistered type = %d, want 0", got)
	}
}
