package interfaces

import domaintypes "verichain/internal/domain/types"

// IdentityStore persists the issuer's long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
}

// CertificateStore keeps issued verification certificates.
type CertificateStore interface {
	SaveCertificate(cert domaintypes.Certificate) error
	LoadCertificate(id domaintypes.CertificateID) (domaintypes.Certificate, bool, error)
	ListCertificates() ([]domaintypes.Certificate, error)
}
