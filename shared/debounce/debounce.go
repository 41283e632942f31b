// Package debounce collapses bursts of calls into the last one (trailing edge).
package debounce

import (
	"context"
	"sync"
	"time"
)

type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending chan struct{}
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Wait blocks for the delay and reports whether the caller is still the latest one.
// A newer Wait or a Cancel releases the earlier caller immediately with false.
func (d *Debouncer) Wait(ctx context.Context) bool {
	superseded := d.replace(make(chan struct{}))

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-superseded:
		return false
	case <-ctx.Done():
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	select {
	case <-superseded:
		return false
	default:
		d.pending = nil
		return true
	}
}

// Cancel releases the pending caller, if any.
func (d *Debouncer) Cancel() {
	d.replace(nil)
}

func (d *Debouncer) replace(next chan struct{}) chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		close(d.pending)
	}

	d.pending = next

	return next
}
