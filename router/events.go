package router

import (
	"log"
	"sync"

	"gobridgerouter/types"
)

// Observer receives router events. Notify runs on a dedicated
// delivery goroutine per observer; a slow or panicking observer can
// never stall or fail the transfer pipeline.
type Observer interface {
	Notify(ev types.Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ev types.Event)

func (f ObserverFunc) Notify(ev types.Event) { f(ev) }

// EventBus is an append-only in-process event log with at-least-once
// delivery to registered observers. Events are published after the
// corresponding state transition commits.
type EventBus struct {
	mu        sync.Mutex
	cond      *sync.Cond
	eventLog  []types.Event
	delivered map[int]int // observer slot -> next log position to deliver
	observers []Observer
	closed    bool
}

func NewEventBus() *EventBus {
	b := &EventBus{delivered: map[int]int{}}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Subscribe registers an observer. It immediately starts receiving the
// whole backlog, which is what gives delivery its at-least-once shape
// across observer restarts within the process.
func (b *EventBus) Subscribe(obs Observer) {
	b.mu.Lock()
	slot := len(b.observers)
	b.observers = append(b.observers, obs)
	b.delivered[slot] = 0
	b.mu.Unlock()

	go b.deliver(slot, obs)
}

// Publish appends the event to the log and wakes delivery goroutines.
// Never blocks on observers.
func (b *EventBus) Publish(ev types.Event) {
	b.mu.Lock()
	b.eventLog = append(b.eventLog, ev)
	b.mu.Unlock()
	b.cond.Broadcast()
}

// Log returns a snapshot of all events published so far.
func (b *EventBus) Log() []types.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]types.Event, len(b.eventLog))
	copy(out, b.eventLog)
	return out
}

// Close stops all delivery goroutines once their backlog is drained.
func (b *EventBus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.cond.Broadcast()
}

func (b *EventBus) deliver(slot int, obs Observer) {
	for {
		b.mu.Lock()
		for b.delivered[slot] >= len(b.eventLog) && !b.closed {
			b.cond.Wait()
		}
		if b.delivered[slot] >= len(b.eventLog) && b.closed {
			b.mu.Unlock()
			return
		}
		ev := b.eventLog[b.delivered[slot]]
		b.delivered[slot]++
		b.mu.Unlock()

		b.notify(obs, ev)
	}
}

func (b *EventBus) notify(obs Observer, ev types.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Observer panicked on event %s (%s): %v", ev.ID, ev.Type, rec)
		}
	}()
	obs.Notify(ev)
}
