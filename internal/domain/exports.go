package domain

import (
	interfaces "verichain/internal/domain/interfaces"
	types "verichain/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID      = types.SessionID
	WalletID       = types.WalletID
	CertificateID  = types.CertificateID
	Fingerprint    = types.Fingerprint
	Identity       = types.Identity
	Ed25519Public  = types.Ed25519Public
	Ed25519Private = types.Ed25519Private
	Status         = types.Status
	Step           = types.Step
	Snapshot       = types.Snapshot
	WalletProvider = types.WalletProvider
	Account        = types.Account
	Connection     = types.Connection
	Certificate    = types.Certificate
	Credential     = types.Credential
)

// Status values re-exported for callers that only import domain.
const (
	StatusIdle      = types.StatusIdle
	StatusScanning  = types.StatusScanning
	StatusVerifying = types.StatusVerifying
	StatusSuccess   = types.StatusSuccess
	StatusFailed    = types.StatusFailed
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService     = interfaces.IdentityService
	VerificationService = interfaces.VerificationService
	WalletService       = interfaces.WalletService
	CertificateService  = interfaces.CertificateService
	IdentityStore       = interfaces.IdentityStore
	CertificateStore    = interfaces.CertificateStore
)
