package verification

import "verichain/internal/domain"

// MaxProgress is the progress value at which a session succeeds.
const MaxProgress = 100

var checklist = []struct {
	title     string
	threshold int
}{
	{"Identity Scan", 25},
	{"Blockchain Verification", 50},
	{"Zero-Knowledge Proof", 75},
	{"Final Validation", 100},
}

// Steps derives the checklist for the given progress.
func Steps(progress int) []domain.Step {
	out := make([]domain.Step, len(checklist))
	for i, c := range checklist {
		out[i] = domain.Step{
			Number:    i + 1,
			Title:     c.title,
			Threshold: c.threshold,
			Completed: progress >= c.threshold,
		}
	}
	return out
}
