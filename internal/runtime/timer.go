package runtime

import (
	"sync"
	"time"

	"github.com/repstack/repcore/internal/app"
)

// ticker owns the session-timer goroutine. Each tick enqueues a timer
// response; the core decides whether the tick counts.
type ticker struct {
	mu    sync.Mutex
	queue *eventQueue
	stopC chan struct{}
	done  chan struct{}
}

func newTicker(queue *eventQueue) *ticker {
	return &ticker{queue: queue}
}

// start launches the tick goroutine, replacing a running one.
func (t *ticker) start(interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	stopC := make(chan struct{})
	done := make(chan struct{})
	t.stopC = stopC
	t.done = done

	go func() {
		defer close(done)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-stopC:
				return
			case <-tick.C:
				if !t.queue.enqueue(app.TimerResponse(app.TimerTicked)) {
					return
				}
			}
		}
	}()
}

// stop terminates the tick goroutine and waits for it to exit.
// Stopping a stopped ticker is a no-op.
func (t *ticker) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *ticker) stopLocked() {
	if t.stopC == nil {
		return
	}
	close(t.stopC)
	<-t.done
	t.stopC = nil
	t.done = nil
}
