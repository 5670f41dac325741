package verification

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"verichain/internal/domain"
	"verichain/internal/logging"
	"verichain/internal/schedule"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("verification session not found")

// Settings are the tick knobs shared by every session of a Service.
type Settings struct {
	Interval time.Duration
	Step     int
}

type entry struct {
	sim         *Simulator
	createdAt   time.Time
	certificate domain.CertificateID
}

// Service keeps a registry of verification sessions.
//
// Each session is an independent Simulator. When a session succeeds the
// service asks the certificate service (if any) to issue a certificate and
// attaches its id to the session until the next Start or Reset.
type Service struct {
	sched    schedule.Scheduler
	certs    domain.CertificateService
	settings Settings
	log      *slog.Logger

	mu       sync.RWMutex
	sessions map[domain.SessionID]*entry
}

// New returns a Service. certs may be nil, in which case no certificates
// are issued.
func New(
	sched schedule.Scheduler,
	certs domain.CertificateService,
	settings Settings,
	logger *slog.Logger,
) *Service {
	if sched == nil {
		sched = schedule.NewReal()
	}
	return &Service{
		sched:    sched,
		certs:    certs,
		settings: settings,
		log:      logging.NewComponentLogger(logger, "verification"),
		sessions: make(map[domain.SessionID]*entry),
	}
}

// Create registers a new idle session.
func (s *Service) Create() domain.Snapshot {
	id := domain.SessionID(uuid.NewString())
	sim := NewSimulator(id, Options{
		Scheduler: s.sched,
		Interval:  s.settings.Interval,
		Step:      s.settings.Step,
		OnSuccess: s.succeeded,
		Logger:    s.log,
	})

	s.mu.Lock()
	s.sessions[id] = &entry{sim: sim, createdAt: s.sched.Now()}
	s.mu.Unlock()

	s.log.Debug("session created", "session_id", id.String())
	return sim.Snapshot()
}

// Get returns the current state of a session.
func (s *Service) Get(id domain.SessionID) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.viewLocked(e), nil
}

// List returns every session, oldest first.
func (s *Service) List() []domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entry, 0, len(s.sessions))
	for _, e := range s.sessions {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].createdAt.Equal(entries[j].createdAt) {
			return entries[i].sim.id < entries[j].sim.id
		}
		return entries[i].createdAt.Before(entries[j].createdAt)
	})

	out := make([]domain.Snapshot, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.viewLocked(e))
	}
	return out
}

// Start begins verification for a session.
func (s *Service) Start(id domain.SessionID) (domain.Snapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := e.sim.Start(); err != nil {
		return e.sim.Snapshot(), err
	}
	s.clearCertificate(id)
	return s.Get(id)
}

// Reset returns a session to idle.
func (s *Service) Reset(id domain.SessionID) (domain.Snapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	e.sim.Reset()
	s.clearCertificate(id)
	return s.Get(id)
}

// Fail injects a failure into a verifying session.
func (s *Service) Fail(id domain.SessionID, reason string) (domain.Snapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if reason == "" {
		reason = "injected fault"
	}
	if err := e.sim.Fail(reason); err != nil {
		return e.sim.Snapshot(), err
	}
	return s.Get(id)
}

// Delete stops a session and discards its state.
func (s *Service) Delete(id domain.SessionID) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	e.sim.Reset()
	s.log.Debug("session deleted", "session_id", id.String())
	return nil
}

// Close stops every session's ticking.
func (s *Service) Close() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.sessions {
		e.sim.Reset()
	}
}

func (s *Service) lookup(id domain.SessionID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return e, nil
}

func (s *Service) viewLocked(e *entry) domain.Snapshot {
	snap := e.sim.Snapshot()
	if snap.Status == domain.StatusSuccess {
		snap.Certificate = e.certificate
	}
	return snap
}

func (s *Service) clearCertificate(id domain.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[id]; ok {
		e.certificate = ""
	}
}

// succeeded issues a certificate for a finished run.
func (s *Service) succeeded(snap domain.Snapshot) {
	if s.certs == nil {
		return
	}
	cert, err := s.certs.Issue(snap)
	if err != nil {
		s.log.Error("issue certificate", "session_id", snap.ID.String(), logging.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[snap.ID]
	if !ok {
		return
	}
	// Attach only if the run that produced snap is still the current one.
	cur := e.sim.Snapshot()
	if cur.Status == domain.StatusSuccess && cur.Run == snap.Run {
		e.certificate = cert.ID
	}
	s.log.Info("certificate issued", "session_id", snap.ID.String(), "certificate_id", cert.ID.String())
}

var _ domain.VerificationService = (*Service)(nil)
