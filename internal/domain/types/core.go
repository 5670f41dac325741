package types

// SessionID identifies a verification session held by the daemon.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// WalletID names a supported wallet provider, e.g. "metamask".
type WalletID string

// String returns the string form of the wallet identifier.
func (id WalletID) String() string { return string(id) }

// CertificateID identifies an issued verification certificate ("VER-XXXXXXXX").
type CertificateID string

// String returns the string form of the certificate identifier.
func (id CertificateID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
