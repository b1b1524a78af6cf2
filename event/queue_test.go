package event

import (
	"sync"
	"testing"

	"github.com/JulioGmz89/wave-director/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 10; i++ {
		q.Push(GameEvent{Type: EventEnemyKilled, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d out of order: frame %d", i, ev.Frame)
		}
	}
}

func TestQueueEmptyConsume(t *testing.T) {
	q := NewEventQueue()
	if events := q.Consume(); events != nil {
		t.Errorf("expected nil from empty queue, got %d events", len(events))
	}
}

func TestQueueConsumeDrains(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventWaveStarted})

	if got := len(q.Consume()); got != 1 {
		t.Fatalf("expected 1 event, got %d", got)
	}
	if events := q.Consume(); events != nil {
		t.Errorf("expected drained queue, got %d events", len(events))
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()

	total := int(parameter.EventQueueSize) + 50
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventEnemyKilled, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) == 0 || len(events) > int(parameter.EventQueueSize) {
		t.Fatalf("expected at most %d events, got %d", parameter.EventQueueSize, len(events))
	}
	// Newest event must survive overflow
	last := events[len(events)-1]
	if last.Frame != int64(total-1) {
		t.Errorf("newest event lost: last frame %d, want %d", last.Frame, total-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 50
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventPlayerDamaged})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("expected %d events, got %d", producers*perProducer, len(events))
	}
}
