package listview

import (
	"sync"
	"time"
)

// CancelFunc cancels a scheduled call. Cancelling after the call ran is a
// no-op.
type CancelFunc func()

// Scheduler runs fn once after delay.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules on real timers.
type TimerScheduler struct{}

// Schedule implements Scheduler with time.AfterFunc.
func (TimerScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// Debouncer delivers only the last value passed to Input once no newer input
// arrived for the configured delay. Each Input cancels and reschedules.
type Debouncer[V any] struct {
	mu      sync.Mutex
	delay   time.Duration
	sched   Scheduler
	fn      func(V)
	seq     uint64
	value   V
	pending bool
	cancel  CancelFunc
	stopped bool
}

// NewDebouncer returns a debouncer calling fn. A nil scheduler uses real
// timers.
func NewDebouncer[V any](delay time.Duration, sched Scheduler, fn func(V)) *Debouncer[V] {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Debouncer[V]{delay: delay, sched: sched, fn: fn}
}

// Delay returns the debounce window.
func (d *Debouncer[V]) Delay() time.Duration {
	return d.delay
}

// Input records v and restarts the window.
func (d *Debouncer[V]) Input(v V) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.seq++
	seq := d.seq
	d.value = v
	d.pending = true
	d.cancel = d.sched.Schedule(d.delay, func() { d.fire(seq) })
}

// Pending reports whether a value is waiting for its window to close.
func (d *Debouncer[V]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush delivers the pending value now. It reports whether there was one.
func (d *Debouncer[V]) Flush() bool {
	d.mu.Lock()
	if !d.pending || d.stopped {
		d.mu.Unlock()
		return false
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.seq++
	v := d.value
	d.pending = false
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Stop cancels any pending value. Later inputs are ignored.
func (d *Debouncer[V]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = false
	d.seq++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer[V]) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || !d.pending || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.cancel = nil
	d.mu.Unlock()

	d.fn(v)
}
