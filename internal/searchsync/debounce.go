package searchsync

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window applied when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Debouncer delays a callback until its window elapses with no further
// Schedule calls. Only the most recently scheduled callback runs, and
// nothing runs after Stop returns. Safe for concurrent use.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer builds a debouncer with the given quiescence window.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Schedule replaces any pending callback with fn. fn fires once the
// window elapses without another Schedule or Stop call. fn runs while
// the debouncer is held and must not call back into it.
func (d *Debouncer) Schedule(fn func()) {
	if d == nil || fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stopped {
			return
		}
		fn()
	})
}

// Stop cancels any pending callback. Once Stop returns no callback can
// start; a callback already running finishes before Stop acquires the
// debouncer.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
