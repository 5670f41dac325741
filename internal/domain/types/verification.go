package types

import "time"

// Status is the lifecycle state of a verification session.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusScanning  Status = "scanning" // declared; no transition enters it
	StatusVerifying Status = "verifying"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
)

// String returns the string form of the status.
func (s Status) String() string { return string(s) }

// Step is one checklist entry derived from a session's progress.
type Step struct {
	Number    int    `json:"step"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
	Completed bool   `json:"completed"`
}

// Snapshot is a point-in-time view of a verification session.
type Snapshot struct {
	ID        SessionID `json:"id,omitempty"`
	Status    Status    `json:"status"`
	Progress  int       `json:"progress"`
	Reason    string    `json:"reason,omitempty"`
	StartedAt time.Time `json:"started_at,omitzero"`
	EndedAt   time.Time `json:"ended_at,omitzero"`
	Steps     []Step    `json:"steps"`
	Run       uint64    `json:"run"` // bumped by every Start
	// Certificate is set once a successful run has been certified.
	Certificate CertificateID `json:"certificate,omitempty"`
}

// Elapsed returns the time between start and end, or zero while unfinished.
func (s Snapshot) Elapsed() time.Duration {
	if s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}
