package certificate_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"verichain/internal/crypto"
	"verichain/internal/domain"
	"verichain/internal/services/certificate"
	"verichain/internal/store"
)

var settings = certificate.Settings{Chain: "Avalanche", GasFee: "$0.02"}

func succeeded() domain.Snapshot {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.Snapshot{
		ID:        "session-1",
		Status:    domain.StatusSuccess,
		Progress:  100,
		StartedAt: start,
		EndedAt:   start.Add(2 * time.Second),
	}
}

func newIssuer(t *testing.T) *domain.Identity {
	t.Helper()
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	return &domain.Identity{EdPub: pub, EdPriv: priv}
}

func TestIssue_SignedRoundTripThroughStore(t *testing.T) {
	dir := t.TempDir()
	svc := certificate.New(store.NewCertificateFileStore(dir), newIssuer(t), settings, nil)

	cert, err := svc.Issue(succeeded())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !strings.HasPrefix(string(cert.ID), "VER-") || len(cert.ID) != 12 || strings.ToUpper(string(cert.ID)) != string(cert.ID) {
		t.Fatalf("id = %q", cert.ID)
	}
	if cert.Chain != "Avalanche" || cert.GasFee != "$0.02" || cert.DurationMS != 2000 {
		t.Fatalf("cert = %+v", cert)
	}

	loaded, err := svc.Get(cert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := svc.Verify(loaded); err != nil {
		t.Fatalf("Verify loaded: %v", err)
	}

	tampered := loaded
	tampered.GasFee = "$0.00"
	if err := svc.Verify(tampered); !errors.Is(err, certificate.ErrBadSignature) {
		t.Fatalf("Verify tampered err = %v", err)
	}
}

func TestIssue_UnsignedWithoutIssuer(t *testing.T) {
	svc := certificate.New(store.NewCertificateFileStore(t.TempDir()), nil, settings, nil)
	cert, err := svc.Issue(succeeded())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if cert.Signed() {
		t.Fatal("expected unsigned certificate")
	}
	if err := svc.Verify(cert); !errors.Is(err, certificate.ErrUnsigned) {
		t.Fatalf("Verify err = %v", err)
	}
	list, err := svc.List()
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %v, %v", list, err)
	}
}

func TestVerify_UntrustedIssuer(t *testing.T) {
	dir := t.TempDir()
	a := certificate.New(store.NewCertificateFileStore(dir), newIssuer(t), settings, nil)
	b := certificate.New(store.NewCertificateFileStore(dir), newIssuer(t), settings, nil)

	cert, err := a.Issue(succeeded())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := b.Verify(cert); !errors.Is(err, certificate.ErrUntrustedIssuer) {
		t.Fatalf("Verify err = %v", err)
	}
	// Without a loaded issuer only the embedded key is checked.
	open := certificate.New(store.NewCertificateFileStore(dir), nil, settings, nil)
	if err := open.Verify(cert); err != nil {
		t.Fatalf("Verify without issuer: %v", err)
	}
}

func TestIssue_RejectsUnfinishedSession(t *testing.T) {
	svc := certificate.New(store.NewCertificateFileStore(t.TempDir()), nil, settings, nil)
	snap := succeeded()
	snap.Status = domain.StatusVerifying
	if _, err := svc.Issue(snap); !errors.Is(err, certificate.ErrNotSucceeded) {
		t.Fatalf("err = %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := certificate.New(store.NewCertificateFileStore(t.TempDir()), nil, settings, nil)
	if _, err := svc.Get("VER-NOPE0000"); !errors.Is(err, certificate.ErrCertificateNotFound) {
		t.Fatalf("err = %v", err)
	}
}
