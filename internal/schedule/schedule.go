package schedule

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop cancels future fires. It reports whether the task was still
	// active; calling it again is a no-op returning false.
	Stop() bool
}

// Scheduler arms delayed and periodic callbacks.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Task
	// Every runs f every d, first after d, until the task is stopped.
	Every(d time.Duration, f func()) Task
	// Now returns the scheduler's current time.
	Now() time.Time
}

// Real schedules callbacks on the runtime timers.
type Real struct{}

// NewReal returns a Scheduler using wall-clock time.
func NewReal() Real { return Real{} }

// Now returns time.Now.
func (Real) Now() time.Time { return time.Now() }

// AfterFunc wraps time.AfterFunc.
func (Real) AfterFunc(d time.Duration, f func()) Task {
	t := &oneShot{}
	t.timer = time.AfterFunc(d, func() {
		if t.finish() {
			f()
		}
	})
	return t
}

// Every starts a ticker goroutine that calls f until stopped.
func (Real) Every(d time.Duration, f func()) Task {
	t := &periodic{done: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				// A stop racing with the tick wins.
				select {
				case <-t.done:
					return
				default:
				}
				f()
			}
		}
	}()
	return t
}

type oneShot struct {
	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// finish marks the task fired; false means it was stopped first.
func (t *oneShot) finish() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}
	t.closed = true
	return true
}

func (t *oneShot) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}
	t.closed = true
	t.timer.Stop()
	return true
}

type periodic struct {
	once sync.Once
	done chan struct{}
}

func (t *periodic) Stop() bool {
	stopped := false
	t.once.Do(func() {
		close(t.done)
		stopped = true
	})
	return stopped
}

var _ Scheduler = Real{}
