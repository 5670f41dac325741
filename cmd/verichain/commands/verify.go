package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"verichain/internal/domain"
)

var errFailAtRange = errors.New("--fail-at must be between 0 and 100 (0 disables)")

// certificateGracePolls bounds how long watch waits for a certificate id
// after success.
const certificateGracePolls = 20

func verifyCmd() *cobra.Command {
	var (
		failAt int
		keep   bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run a verification session and watch it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if failAt < 0 || failAt > 100 {
				return errFailAtRange
			}
			ctx := cmd.Context()
			b := currentBackend()

			snap, err := b.CreateSession(ctx)
			if err != nil {
				return err
			}
			if !keep {
				defer func() { _ = b.DeleteSession(context.WithoutCancel(ctx), snap.ID) }()
			}
			if snap, err = b.StartSession(ctx, snap.ID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session %s\n", snap.ID)
			snap, err = watch(ctx, b, snap, failAt, out)
			if err != nil {
				return err
			}
			return report(out, snap)
		},
	}
	cmd.Flags().IntVar(&failAt, "fail-at", 0, "inject a failure once progress reaches this value")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep the session on the server after it finishes")
	return cmd
}

// watch polls the session until it leaves the verifying state, redrawing a
// single progress line on terminals and printing one line per change
// otherwise.
func watch(ctx context.Context, b backend, snap domain.Snapshot, failAt int, out io.Writer) (domain.Snapshot, error) {
	redraw := isTerminal(out)
	last, lastStatus := -1, snap.Status
	grace := certificateGracePolls
	err := poll(ctx, pollInterval(), func() (bool, error) {
		var err error
		snap, err = b.Session(ctx, snap.ID)
		if err != nil {
			return false, err
		}
		if failAt > 0 && snap.Status == domain.StatusVerifying && snap.Progress >= failAt {
			if snap, err = b.FailSession(ctx, snap.ID, fmt.Sprintf("fault injected at %d%%", failAt)); err != nil {
				return false, err
			}
		}
		if snap.Progress != last || snap.Status != lastStatus {
			if redraw {
				fmt.Fprintf(out, "\r\033[K%s", progressLine(snap))
			} else {
				fmt.Fprintln(out, progressLine(snap))
			}
			last, lastStatus = snap.Progress, snap.Status
		}
		// The certificate is attached just after success is published.
		if snap.Status == domain.StatusSuccess && snap.Certificate == "" && grace > 0 {
			grace--
			return false, nil
		}
		return snap.Status != domain.StatusVerifying, nil
	})
	if redraw {
		fmt.Fprintln(out)
	}
	return snap, err
}

func report(out io.Writer, snap domain.Snapshot) error {
	switch snap.Status {
	case domain.StatusSuccess:
		fmt.Fprintf(out, "Verification complete in %s.\n", snap.Elapsed())
		if snap.Certificate != "" {
			fmt.Fprintf(out, "Certificate: %s\n", snap.Certificate)
		}
		return nil
	case domain.StatusFailed:
		return fmt.Errorf("verification failed: %s", snap.Reason)
	default:
		return fmt.Errorf("verification ended in state %s", snap.Status)
	}
}
