package commands

import (
	"context"
	"errors"
	"time"

	"verichain/internal/app"
	"verichain/internal/client"
	"verichain/internal/credentials"
	"verichain/internal/domain"
)

// errNeedsServer is returned by commands whose state only exists in verichaind.
var errNeedsServer = errors.New("wallet state lives in verichaind; use --server")

// backend is what the commands need from either the in-process services or
// a running daemon.
type backend interface {
	CreateSession(ctx context.Context) (domain.Snapshot, error)
	StartSession(ctx context.Context, id domain.SessionID) (domain.Snapshot, error)
	Session(ctx context.Context, id domain.SessionID) (domain.Snapshot, error)
	FailSession(ctx context.Context, id domain.SessionID, reason string) (domain.Snapshot, error)
	DeleteSession(ctx context.Context, id domain.SessionID) error

	Wallets(ctx context.Context) ([]domain.WalletProvider, error)
	ConnectWallet(ctx context.Context, id domain.WalletID) (domain.Connection, error)
	WalletState(ctx context.Context) (domain.Connection, error)
	DisconnectWallet(ctx context.Context) (domain.Connection, error)

	Credentials(ctx context.Context) ([]domain.Credential, error)
	Certificates(ctx context.Context) ([]domain.Certificate, error)
	Certificate(ctx context.Context, id domain.CertificateID) (domain.Certificate, error)
}

type localBackend struct{ w *app.Wire }

func (b localBackend) CreateSession(context.Context) (domain.Snapshot, error) {
	return b.w.Verification.Create(), nil
}

func (b localBackend) StartSession(_ context.Context, id domain.SessionID) (domain.Snapshot, error) {
	return b.w.Verification.Start(id)
}

func (b localBackend) Session(_ context.Context, id domain.SessionID) (domain.Snapshot, error) {
	return b.w.Verification.Get(id)
}

func (b localBackend) FailSession(_ context.Context, id domain.SessionID, reason string) (domain.Snapshot, error) {
	return b.w.Verification.Fail(id, reason)
}

func (b localBackend) DeleteSession(_ context.Context, id domain.SessionID) error {
	return b.w.Verification.Delete(id)
}

func (b localBackend) Wallets(context.Context) ([]domain.WalletProvider, error) {
	return b.w.Wallet.Providers(), nil
}

func (b localBackend) ConnectWallet(_ context.Context, id domain.WalletID) (domain.Connection, error) {
	return b.w.Wallet.Connect(id)
}

func (b localBackend) WalletState(context.Context) (domain.Connection, error) {
	return domain.Connection{}, errNeedsServer
}

func (b localBackend) DisconnectWallet(context.Context) (domain.Connection, error) {
	return domain.Connection{}, errNeedsServer
}

func (b localBackend) Credentials(context.Context) ([]domain.Credential, error) {
	return credentials.All(), nil
}

func (b localBackend) Certificates(context.Context) ([]domain.Certificate, error) {
	return b.w.Certificates.List()
}

func (b localBackend) Certificate(_ context.Context, id domain.CertificateID) (domain.Certificate, error) {
	return b.w.Certificates.Get(id)
}

var (
	_ backend = localBackend{}
	_ backend = (*client.HTTP)(nil)
)

// pollInterval is how often watchers re-read state from the backend.
func pollInterval() time.Duration {
	d := settings.TickInterval() / 2
	if d < 5*time.Millisecond {
		d = 5 * time.Millisecond
	}
	return d
}

// poll calls fn every interval until it reports done, errors, or ctx ends.
func poll(ctx context.Context, interval time.Duration, fn func() (bool, error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		done, err := fn()
		if err != nil || done {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
