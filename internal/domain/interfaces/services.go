package interfaces

import domaintypes "verichain/internal/domain/types"

// IdentityService creates, retrieves, and inspects the issuer identity.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
}

// VerificationService drives simulated verification sessions.
type VerificationService interface {
	Create() domaintypes.Snapshot
	Get(id domaintypes.SessionID) (domaintypes.Snapshot, error)
	List() []domaintypes.Snapshot
	Start(id domaintypes.SessionID) (domaintypes.Snapshot, error)
	Reset(id domaintypes.SessionID) (domaintypes.Snapshot, error)
	Fail(id domaintypes.SessionID, reason string) (domaintypes.Snapshot, error)
	Delete(id domaintypes.SessionID) error
}

// WalletService runs the simulated wallet-connect handshake.
type WalletService interface {
	Providers() []domaintypes.WalletProvider
	Connect(id domaintypes.WalletID) (domaintypes.Connection, error)
	Disconnect() domaintypes.Connection
	State() domaintypes.Connection
}

// CertificateService issues and checks verification certificates.
type CertificateService interface {
	Issue(snap domaintypes.Snapshot) (domaintypes.Certificate, error)
	Get(id domaintypes.CertificateID) (domaintypes.Certificate, error)
	List() ([]domaintypes.Certificate, error)
	Verify(cert domaintypes.Certificate) error
}
