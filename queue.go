package fshidden

import "sync"

// EventQueue is a FIFO of events safe for concurrent use.
type EventQueue struct {
	mu    sync.Mutex
	queue []*Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{queue: make([]*Event, 0)}
}

func (eq *EventQueue) Push(event *Event) {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	eq.queue = append(eq.queue, event)
}

func (eq *EventQueue) Pop() *Event {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	if len(eq.queue) == 0 {
		return nil
	}
	event := eq.queue[0]
	eq.queue = eq.queue[1:]
	return event
}

// Drain removes and returns every queued event.
func (eq *EventQueue) Drain() []*Event {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	events := eq.queue
	eq.queue = make([]*Event, 0)
	return events
}

func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.queue)
}
