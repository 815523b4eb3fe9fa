// Package watcher reloads an input bar configuration when its file changes.
package watcher

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period after the last change before a reload.
const DefaultDelay = 200 * time.Millisecond

// debouncer runs only the last of a burst of callbacks, once the burst has
// been quiet for delay.
type debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(delay time.Duration) *debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A timer that fired while being replaced must not run.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			fn()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
