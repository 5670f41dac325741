package schedule

import (
	"sync"
	"time"
)

// Manual is a virtual clock. Callbacks only fire inside Advance, on the
// caller's goroutine, in due-time order (ties in scheduling order).
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	s      *Manual
	at     time.Time
	every  time.Duration
	seq    uint64
	f      func()
	active bool
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules f once at Now()+d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Task {
	return m.add(d, 0, f)
}

// Every schedules f at every multiple of d from Now().
func (m *Manual) Every(d time.Duration, f func()) Task {
	if d <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, every time.Duration, f func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{s: m, at: m.now.Add(d), every: every, seq: m.seq, f: f, active: true}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that falls
// due on the way.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		if next.every > 0 {
			next.at = next.at.Add(next.every)
		} else {
			next.active = false
		}
		m.pruneLocked()
		f := next.f
		m.mu.Unlock()

		f()
	}
}

// Pending returns the number of tasks that may still fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if t.active {
			n++
		}
	}
	return n
}

func (m *Manual) nextDueLocked(target time.Time) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if !t.active || t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) pruneLocked() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.active {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(m.tasks); i++ {
		m.tasks[i] = nil
	}
	m.tasks = kept
}

func (t *manualTask) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if !t.active {
		return false
	}
	t.active = false
	t.s.pruneLocked()
	return true
}

var _ Scheduler = (*Manual)(nil)
