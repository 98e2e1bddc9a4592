package runtime

import (
	"sync"

	"github.com/repstack/repcore/internal/app"
)

// eventQueue is a thread-safe FIFO queue of core events.
//
// The queue is unbounded so capability responses and ticker output can be
// enqueued from their own goroutines without ever blocking against the
// run loop that drains them.
//
// The signal channel (buffered, size 1) coalesces availability
// notifications and lets the run loop wait with context awareness.
type eventQueue struct {
	mu     sync.Mutex
	events []app.Event
	closed bool
	signal chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		events: make([]app.Event, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// enqueue adds an event to the back of the queue.
// Thread-safe: may be called from any goroutine.
// Returns false if the queue is closed.
func (q *eventQueue) enqueue(e app.Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.events = append(q.events, e)

	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// tryDequeue attempts to dequeue without blocking.
func (q *eventQueue) tryDequeue() (app.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return app.Event{}, false
	}

	e := q.events[0]
	// Nil out the slot so the event's payload pointers are collectable
	// before the backing array is reallocated.
	q.events[0] = app.Event{}
	if len(q.events) == 1 {
		q.events = q.events[:0]
	} else {
		q.events = q.events[1:]
	}
	return e, true
}

// wait returns a channel that receives when events may be available.
func (q *eventQueue) wait() <-chan struct{} {
	return q.signal
}

// close marks the queue closed; further enqueues are rejected.
func (q *eventQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true

	select {
	case q.signal <- struct{}{}:
	default:
	}
}
