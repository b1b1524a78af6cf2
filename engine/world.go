package engine

import (
	"sync/atomic"

	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/status"
)

// System is a tick-driven unit of game logic
// Systems receive routed events first, then an Update with the tick's dt
type System interface {
	// Name identifies the system in diagnostics
	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	// EventTypes returns the event types this system consumes
	// The world uses this for handler registration
	EventTypes() []event.EventType

	// HandleEvent processes a single routed event
	// Called synchronously during the dispatch phase, before any Update
	HandleEvent(ev event.GameEvent)

	// Update advances the system by dt seconds
	Update(dt float64)
}

// World owns the event queue, handler registration, and the priority-ordered
// system list. It is the composition root's shared context object: one
// generator, one performance tracker, one director, wired once, no globals
//
// Tick contract (single simulation goroutine):
//  1. All pending events are consumed and dispatched in FIFO order.
//     Handlers for one event run in system registration order.
//  2. Systems update in ascending priority order with the same dt.
//
// Events pushed during dispatch or update are delivered next tick, except
// through DispatchNow which the reset path uses
type World struct {
	queue    *event.EventQueue
	handlers map[event.EventType][]System
	systems  []System
	frame    atomic.Int64

	// Status is the lock-free telemetry registry shared by all systems
	Status *status.Registry
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		queue:    event.NewEventQueue(),
		handlers: make(map[event.EventType][]System),
		Status:   status.NewRegistry(),
	}
}

// AddSystem registers a system for updates and for its declared event types
// Systems are kept sorted by priority (insertion sort, small N)
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}

	for _, t := range s.EventTypes() {
		w.handlers[t] = append(w.handlers[t], s)
	}
}

// Systems returns the registered systems in update order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// PushEvent queues a game event stamped with the current frame
// Safe to call from any goroutine
func (w *World) PushEvent(t event.EventType, payload any) {
	w.queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// Tick advances the simulation by dt seconds: dispatch, then update
func (w *World) Tick(dt float64) {
	w.frame.Add(1)
	w.dispatchAll()
	for _, s := range w.systems {
		s.Update(dt)
	}
}

// DispatchNow synchronously delivers one event to its handlers, bypassing
// the queue. Used for reset, which must replace all mutable state atomically
// with respect to the tick cycle
func (w *World) DispatchNow(ev event.GameEvent) {
	for _, s := range w.handlers[ev.Type] {
		s.HandleEvent(ev)
	}
}

// Reset restores every system to initial state between runs
// Pending events from the previous run are dropped first so stale kill or
// health notifications cannot leak into the fresh session
func (w *World) Reset() {
	w.queue.Consume()
	w.frame.Store(0)
	w.DispatchNow(event.GameEvent{Type: event.EventGameReset})
}

// HandlerCount returns the number of handlers for an event type
// Useful for wiring assertions in tests
func (w *World) HandlerCount(t event.EventType) int {
	return len(w.handlers[t])
}

func (w *World) dispatchAll() {
	events := w.queue.Consume()
	for _, ev := range events {
		for _, s := range w.handlers[ev.Type] {
			s.HandleEvent(ev)
		}
	}
}
