package app

import (
	"errors"
	"fmt"

	"verichain/internal/config"
	"verichain/internal/domain"
	"verichain/internal/logging"
	"verichain/internal/schedule"
	certificatesvc "verichain/internal/services/certificate"
	identitysvc "verichain/internal/services/identity"
	verificationsvc "verichain/internal/services/verification"
	walletsvc "verichain/internal/services/wallet"
	"verichain/internal/store"
)

// Wire bundles all stores and services for the CLI and daemon.
type Wire struct {
	Settings     *config.Config
	Identity     domain.IdentityService
	Certificates domain.CertificateService
	Verification *verificationsvc.Service
	Wallet       *walletsvc.Connector
	Scheduler    schedule.Scheduler

	// Issuer is the unlocked issuer identity, nil when no passphrase was
	// given or no key exists yet.
	Issuer *domain.Identity
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Settings == nil {
		return nil, errors.New("app: nil settings")
	}
	settings := cfg.Settings
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = schedule.NewReal()
	}

	// File-based stores
	identityStore := store.NewIdentityFileStore(settings.HomeDir)
	certificateStore := store.NewCertificateFileStore(settings.HomeDir)

	idSvc := identitysvc.New(identityStore)

	var issuer *domain.Identity
	if cfg.Passphrase != "" && identityStore.Exists() {
		id, err := idSvc.LoadIdentity(cfg.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("unlock issuer key: %w", err)
		}
		issuer = &id
	}

	certSvc := certificatesvc.New(certificateStore, issuer, certificatesvc.Settings{
		Chain:  settings.Certificate.Chain,
		GasFee: settings.Certificate.GasFee,
	}, logger)

	verSvc := verificationsvc.New(sched, certSvc, verificationsvc.Settings{
		Interval: settings.TickInterval(),
		Step:     settings.Verification.Step,
	}, logger)

	connector := walletsvc.NewConnector(walletsvc.Options{
		Scheduler: sched,
		Delay:     settings.ConnectDelay(),
		Logger:    logger,
	})

	return &Wire{
		Settings:     settings,
		Identity:     idSvc,
		Certificates: certSvc,
		Verification: verSvc,
		Wallet:       connector,
		Scheduler:    sched,
		Issuer:       issuer,
	}, nil
}

// Close stops any running timers.
func (w *Wire) Close() {
	w.Verification.Close()
	w.Wallet.Disconnect()
}
