package verification

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"verichain/internal/domain"
	"verichain/internal/logging"
	"verichain/internal/schedule"
)

var (
	// ErrInProgress is returned by Start while a session is verifying.
	ErrInProgress = errors.New("verification already in progress")
	// ErrNotVerifying is returned by Fail outside the verifying state.
	ErrNotVerifying = errors.New("verification is not in progress")
)

// Options configures a Simulator.
type Options struct {
	Scheduler schedule.Scheduler
	Interval  time.Duration
	Step      int
	// OnSuccess runs on the tick goroutine after the session reached
	// success, outside the simulator lock.
	OnSuccess func(domain.Snapshot)
	Logger    *slog.Logger
}

// Simulator is one verification session: a status and a progress counter.
type Simulator struct {
	id        domain.SessionID
	sched     schedule.Scheduler
	interval  time.Duration
	step      int
	onSuccess func(domain.Snapshot)
	log       *slog.Logger

	mu        sync.Mutex
	status    domain.Status
	progress  int
	reason    string
	startedAt time.Time
	endedAt   time.Time
	task      schedule.Task
	gen       uint64
	run       uint64
}

// NewSimulator returns an idle session.
func NewSimulator(id domain.SessionID, opts Options) *Simulator {
	sched := opts.Scheduler
	if sched == nil {
		sched = schedule.NewReal()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	step := opts.Step
	if step <= 0 {
		step = 10
	}
	return &Simulator{
		id:        id,
		sched:     sched,
		interval:  interval,
		step:      step,
		onSuccess: opts.OnSuccess,
		log:       logging.NewComponentLogger(opts.Logger, "verification").With("session_id", id.String()),
		status:    domain.StatusIdle,
	}
}

// Start begins a run from zero. It is rejected with ErrInProgress while
// verifying; from any other state it restarts.
func (s *Simulator) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.StatusVerifying {
		return ErrInProgress
	}
	s.stopLocked()
	s.run++
	s.status = domain.StatusVerifying
	s.progress = 0
	s.reason = ""
	s.startedAt = s.sched.Now()
	s.endedAt = time.Time{}

	gen := s.gen
	s.task = s.sched.Every(s.interval, func() { s.tick(gen) })
	s.log.Debug("verification started", "interval", s.interval, "step", s.step)
	return nil
}

// Reset returns the session to idle at zero progress and cancels ticking.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.status = domain.StatusIdle
	s.progress = 0
	s.reason = ""
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

// Fail moves a verifying session to failed, keeping its progress.
func (s *Simulator) Fail(reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusVerifying {
		return ErrNotVerifying
	}
	s.stopLocked()
	s.status = domain.StatusFailed
	s.reason = reason
	s.endedAt = s.sched.Now()
	s.log.Info("verification failed", "progress", s.progress, "reason", reason)
	return nil
}

// Snapshot returns the current state with the derived checklist.
func (s *Simulator) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Simulator) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		ID:        s.id,
		Status:    s.status,
		Progress:  s.progress,
		Reason:    s.reason,
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
		Steps:     Steps(s.progress),
		Run:       s.run,
	}
}

func (s *Simulator) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.status != domain.StatusVerifying {
		s.mu.Unlock()
		return
	}
	s.progress += s.step
	if s.progress < MaxProgress {
		s.mu.Unlock()
		return
	}

	s.progress = MaxProgress
	s.status = domain.StatusSuccess
	s.endedAt = s.sched.Now()
	s.stopLocked()
	snap := s.snapshotLocked()
	hook := s.onSuccess
	s.mu.Unlock()

	s.log.Info("verification succeeded", "elapsed", snap.Elapsed())
	if hook != nil {
		hook(snap)
	}
}

// stopLocked cancels the tick task and invalidates ticks already in flight.
func (s *Simulator) stopLocked() {
	s.gen++
	if s.task != nil {
		s.task.Stop()
		s.task = nil
	}
}
