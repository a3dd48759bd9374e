package trigger

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending timer. Scheduling cancels and
// replaces any previous pending call; timers are never stacked.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Schedule runs fn after delayMs, replacing any pending call. A delay of
// zero or less runs fn immediately.
func (d *Debouncer) Schedule(delayMs int, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if delayMs <= 0 {
		fn()
		return
	}
	d.timer = time.AfterFunc(time.Duration(delayMs)*time.Millisecond, fn)
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
