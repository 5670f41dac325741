package wallet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"verichain/internal/domain"
	"verichain/internal/logging"
	"verichain/internal/schedule"
)

var (
	// ErrUnknownWallet is returned for provider ids outside the catalog.
	ErrUnknownWallet = errors.New("unknown wallet")
	// ErrConnectPending is returned while a connection attempt is in flight.
	ErrConnectPending = errors.New("wallet connection already pending")
	// ErrAlreadyConnected is returned when a wallet is connected.
	ErrAlreadyConnected = errors.New("wallet already connected")
)

// Options configures a Connector.
type Options struct {
	Scheduler schedule.Scheduler
	Delay     time.Duration
	// OnConnect runs on the timer goroutine once a connection completes.
	OnConnect func(domain.Connection)
	Logger    *slog.Logger
}

// Connector holds the selected wallet and connection flag.
type Connector struct {
	sched     schedule.Scheduler
	delay     time.Duration
	onConnect func(domain.Connection)
	log       *slog.Logger

	mu        sync.Mutex
	selected  domain.WalletID
	connected bool
	pending   schedule.Task
	gen       uint64
}

// NewConnector returns a disconnected Connector.
func NewConnector(opts Options) *Connector {
	sched := opts.Scheduler
	if sched == nil {
		sched = schedule.NewReal()
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	return &Connector{
		sched:     sched,
		delay:     delay,
		onConnect: opts.OnConnect,
		log:       logging.NewComponentLogger(opts.Logger, "wallet"),
	}
}

// Providers returns the wallet catalog.
func (c *Connector) Providers() []domain.WalletProvider { return Providers() }

// Connect selects a wallet and arms the delayed connection.
func (c *Connector) Connect(id domain.WalletID) (domain.Connection, error) {
	if _, ok := Lookup(id); !ok {
		return c.State(), fmt.Errorf("%w: %q", ErrUnknownWallet, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return c.stateLocked(), ErrConnectPending
	}
	if c.connected {
		return c.stateLocked(), ErrAlreadyConnected
	}

	c.gen++
	gen := c.gen
	c.selected = id
	c.pending = c.sched.AfterFunc(c.delay, func() { c.complete(gen) })
	c.log.Debug("wallet connect requested", "wallet", id.String(), "delay", c.delay)
	return c.stateLocked(), nil
}

// Disconnect clears the connection and cancels any pending attempt.
func (c *Connector) Disconnect() domain.Connection {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	if c.connected {
		c.log.Info("wallet disconnected", "wallet", c.selected.String())
	}
	c.connected = false
	c.selected = ""
	return c.stateLocked()
}

// State returns the current connection view.
func (c *Connector) State() domain.Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Connector) stateLocked() domain.Connection {
	conn := domain.Connection{
		Selected:  c.selected,
		Pending:   c.pending != nil,
		Connected: c.connected,
	}
	if c.connected {
		acct := MockAccount
		conn.Account = &acct
	}
	return conn
}

func (c *Connector) complete(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.pending == nil {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.connected = true
	conn := c.stateLocked()
	hook := c.onConnect
	c.mu.Unlock()

	c.log.Info("wallet connected", "wallet", conn.Selected.String())
	if hook != nil {
		hook(conn)
	}
}

var _ domain.WalletService = (*Connector)(nil)
