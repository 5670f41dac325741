package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"verichain/internal/api"
	"verichain/internal/app"
	"verichain/internal/config"
	"verichain/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// ErrAlreadyRunning is returned when another daemon holds the home lock.
var ErrAlreadyRunning = errors.New("another verichaind instance is already running")

// Options configures a daemon run.
type Options struct {
	Bind       string
	Passphrase string

	// Ready, when set, receives the bound address once the listener is up.
	Ready chan<- string
}

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	if err := cfg.EnsureHome(); err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	lockPath := filepath.Join(cfg.HomeDir, "verichaind.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release daemon lock", logging.Error(err))
		}
	}()

	w, err := app.NewWire(app.Config{Settings: cfg, Passphrase: opts.Passphrase, Logger: logger})
	if err != nil {
		return err
	}
	defer w.Close()
	if w.Issuer == nil {
		logger.Warn("issuer key not unlocked; certificates will be unsigned")
	}

	srv := api.NewServer(w.Verification, w.Wallet, w.Certificates,
		api.QRSettings{Type: cfg.QR.Type, Endpoint: cfg.QR.Endpoint}, nil, logger)

	bind := opts.Bind
	if bind == "" {
		bind = cfg.API.Bind
	}
	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("listen %s: %w", bind, err)
	}
	httpSrv := &http.Server{
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	logger.Info("verichaind listening", "addr", ln.Addr().String(), "home", cfg.HomeDir, "lock", lockPath)
	if opts.Ready != nil {
		opts.Ready <- ln.Addr().String()
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("verichaind shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
