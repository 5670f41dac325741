package wallet_test

import (
	"errors"
	"testing"
	"time"

	"verichain/internal/domain"
	"verichain/internal/schedule"
	"verichain/internal/services/wallet"
)

const delay = 1500 * time.Millisecond

func newConnector(onConnect func(domain.Connection)) (*wallet.Connector, *schedule.Manual) {
	clock := schedule.NewManual(time.Unix(0, 0))
	return wallet.NewConnector(wallet.Options{Scheduler: clock, Delay: delay, OnConnect: onConnect}), clock
}

func TestConnector_ConnectAfterDelay(t *testing.T) {
	var hooked int
	c, clock := newConnector(func(domain.Connection) { hooked++ })

	conn, err := c.Connect("metamask")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if !conn.Pending || conn.Connected || conn.Selected != "metamask" {
		t.Fatalf("after connect = %+v", conn)
	}

	clock.Advance(delay - time.Millisecond)
	if c.State().Connected {
		t.Fatal("connected before delay elapsed")
	}
	clock.Advance(time.Millisecond)

	conn = c.State()
	if !conn.Connected || conn.Pending || conn.Selected != "metamask" {
		t.Fatalf("after delay = %+v", conn)
	}
	if conn.Account == nil || conn.Account.Address != wallet.MockAccount.Address {
		t.Fatalf("account = %+v", conn.Account)
	}
	if hooked != 1 {
		t.Fatalf("hook fired %d times", hooked)
	}
}

func TestConnector_DisconnectCancelsPendingAttempt(t *testing.T) {
	c, clock := newConnector(nil)
	if _, err := c.Connect("metamask"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	conn := c.Disconnect()
	if conn.Connected || conn.Pending || conn.Selected != "" {
		t.Fatalf("after disconnect = %+v", conn)
	}
	if clock.Pending() != 0 {
		t.Fatalf("timer still armed: %d", clock.Pending())
	}

	clock.Advance(2 * delay)
	if c.State().Connected {
		t.Fatal("stale timer reconnected after disconnect")
	}
}

func TestConnector_ConnectIgnoredWhilePending(t *testing.T) {
	c, clock := newConnector(nil)
	if _, err := c.Connect("metamask"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	clock.Advance(delay / 2)

	conn, err := c.Connect("rainbow")
	if !errors.Is(err, wallet.ErrConnectPending) {
		t.Fatalf("second Connect err = %v", err)
	}
	if conn.Selected != "metamask" {
		t.Fatalf("selection changed to %q", conn.Selected)
	}
	if clock.Pending() != 1 {
		t.Fatalf("armed timers = %d, want 1", clock.Pending())
	}

	// The first attempt still resolves on its own schedule.
	clock.Advance(delay / 2)
	if conn := c.State(); !conn.Connected || conn.Selected != "metamask" {
		t.Fatalf("after delay = %+v", conn)
	}
}

func TestConnector_ConnectWhenConnected(t *testing.T) {
	c, clock := newConnector(nil)
	_, _ = c.Connect("coinbase")
	clock.Advance(delay)

	if _, err := c.Connect("rainbow"); !errors.Is(err, wallet.ErrAlreadyConnected) {
		t.Fatalf("Connect err = %v", err)
	}
	c.Disconnect()
	if _, err := c.Connect("rainbow"); err != nil {
		t.Fatalf("Connect after disconnect: %v", err)
	}
	clock.Advance(delay)
	if conn := c.State(); conn.Selected != "rainbow" || !conn.Connected {
		t.Fatalf("reconnect = %+v", conn)
	}
}

func TestConnector_UnknownWallet(t *testing.T) {
	c, clock := newConnector(nil)
	if _, err := c.Connect("phantom"); !errors.Is(err, wallet.ErrUnknownWallet) {
		t.Fatalf("err = %v", err)
	}
	if clock.Pending() != 0 || c.State().Selected != "" {
		t.Fatal("unknown wallet changed state")
	}
}

func TestConnector_DisconnectIsIdempotent(t *testing.T) {
	c, _ := newConnector(nil)
	c.Disconnect()
	if conn := c.Disconnect(); conn.Connected || conn.Selected != "" {
		t.Fatalf("state = %+v", conn)
	}
}

func TestProviders_Catalog(t *testing.T) {
	ps := wallet.Providers()
	want := []domain.WalletID{"metamask", "walletconnect", "coinbase", "rainbow"}
	if len(ps) != len(want) {
		t.Fatalf("providers = %d", len(ps))
	}
	for i, p := range ps {
		if p.ID != want[i] || !p.Available {
			t.Fatalf("provider %d = %+v", i, p)
		}
	}
	ps[0].Name = "mutated"
	if p, _ := wallet.Lookup("metamask"); p.Name != "MetaMask" {
		t.Fatal("Providers exposed internal slice")
	}
}
