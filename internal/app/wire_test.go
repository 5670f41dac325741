package app_test

import (
	"errors"
	"testing"
	"time"

	"verichain/internal/app"
	"verichain/internal/config"
	"verichain/internal/domain"
	"verichain/internal/schedule"
	"verichain/internal/services/identity"
	"verichain/internal/store"
)

const pass = "Sup3r-Secret-Key"

func settings(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.HomeDir = t.TempDir()
	return &cfg
}

func TestWire_SignsCertificatesWhenUnlocked(t *testing.T) {
	cfg := settings(t)
	if _, _, err := identity.New(store.NewIdentityFileStore(cfg.HomeDir)).GenerateIdentity(pass); err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}

	clock := schedule.NewManual(time.Unix(1_700_000_000, 0))
	w, err := app.NewWire(app.Config{Settings: cfg, Passphrase: pass, Scheduler: clock})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()
	if w.Issuer == nil {
		t.Fatal("issuer not unlocked")
	}

	id := w.Verification.Create().ID
	if _, err := w.Verification.Start(id); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Advance(cfg.TickInterval() * 10)

	snap, err := w.Verification.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.Status != domain.StatusSuccess || snap.Certificate == "" {
		t.Fatalf("snap = %+v", snap)
	}
	cert, err := w.Certificates.Get(snap.Certificate)
	if err != nil {
		t.Fatalf("Certificates.Get: %v", err)
	}
	if err := w.Certificates.Verify(cert); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestWire_WrongPassphrase(t *testing.T) {
	cfg := settings(t)
	if _, _, err := identity.New(store.NewIdentityFileStore(cfg.HomeDir)).GenerateIdentity(pass); err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	_, err := app.NewWire(app.Config{Settings: cfg, Passphrase: "Wrong-Passphrase-1"})
	if !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestWire_NoIssuerWithoutKey(t *testing.T) {
	w, err := app.NewWire(app.Config{Settings: settings(t), Passphrase: pass})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()
	if w.Issuer != nil {
		t.Fatal("issuer unlocked without key file")
	}
}
