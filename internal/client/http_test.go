package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"verichain/internal/api"
	"verichain/internal/app"
	"verichain/internal/client"
	"verichain/internal/config"
	"verichain/internal/domain"
	"verichain/internal/schedule"
)

func newDaemon(t *testing.T) (*client.HTTP, *schedule.Manual, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.HomeDir = t.TempDir()
	clock := schedule.NewManual(time.Unix(1_700_000_000, 0))
	w, err := app.NewWire(app.Config{Settings: &cfg, Scheduler: clock})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	t.Cleanup(w.Close)
	srv := api.NewServer(w.Verification, w.Wallet, w.Certificates,
		api.QRSettings{Type: cfg.QR.Type, Endpoint: cfg.QR.Endpoint}, clock.Now, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return client.NewHTTP(ts.URL + "/"), clock, &cfg
}

func TestClient_VerificationRoundTrip(t *testing.T) {
	c, clock, cfg := newDaemon(t)
	ctx := context.Background()

	if err := c.Health(ctx); err != nil {
		t.Fatalf("Health: %v", err)
	}
	snap, err := c.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := c.StartSession(ctx, snap.ID); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	_, err = c.StartSession(ctx, snap.ID)
	var se *client.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusConflict || se.Message == "" {
		t.Fatalf("second start err = %v", err)
	}

	clock.Advance(cfg.TickInterval() * 10)
	snap, err = c.Session(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if snap.Status != domain.StatusSuccess {
		t.Fatalf("status = %s", snap.Status)
	}
	certs, err := c.Certificates(ctx)
	if err != nil || len(certs) != 1 || certs[0].ID != snap.Certificate {
		t.Fatalf("Certificates = %+v, %v", certs, err)
	}

	if err := c.DeleteSession(ctx, snap.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := c.Session(ctx, snap.ID); !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("Session after delete err = %v", err)
	}
}

func TestClient_Wallet(t *testing.T) {
	c, clock, cfg := newDaemon(t)
	ctx := context.Background()

	conn, err := c.ConnectWallet(ctx, "coinbase")
	if err != nil || !conn.Pending {
		t.Fatalf("ConnectWallet = %+v, %v", conn, err)
	}
	clock.Advance(cfg.ConnectDelay())
	conn, err = c.WalletState(ctx)
	if err != nil || !conn.Connected || conn.Selected != "coinbase" {
		t.Fatalf("WalletState = %+v, %v", conn, err)
	}
	if conn, err = c.DisconnectWallet(ctx); err != nil || conn.Connected {
		t.Fatalf("DisconnectWallet = %+v, %v", conn, err)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	c, _, _ := newDaemon(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Health(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
