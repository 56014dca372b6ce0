package classroom

import (
	"sync"
	"time"
)

// completionTimer runs at most one delayed callback. Cancel and a later
// Schedule both invalidate a pending callback, even one whose timer has
// already expired but not yet taken the lock. The callback runs under the
// lock, so Cancel returns only once a running callback has finished. The
// callback must not call back into the timer.
type completionTimer struct {
	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
}

func (t *completionTimer) Schedule(delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	gen := t.generation
	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.generation {
			return
		}
		t.generation++
		t.timer = nil
		fn()
	})
}

func (t *completionTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Pending reports whether a callback is scheduled and has not fired.
func (t *completionTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

func (t *completionTimer) stopLocked() {
	t.generation++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
