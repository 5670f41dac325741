package certificate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"verichain/internal/crypto"
	"verichain/internal/domain"
	"verichain/internal/logging"
)

// IDPrefix starts every certificate id.
const IDPrefix = "VER-"

const idLen = 8

var (
	// ErrCertificateNotFound is returned for unknown certificate ids.
	ErrCertificateNotFound = errors.New("certificate not found")
	// ErrUnsigned is returned when verifying a certificate without a signature.
	ErrUnsigned = errors.New("certificate is not signed")
	// ErrBadSignature is returned when the signature does not match.
	ErrBadSignature = errors.New("certificate signature is invalid")
	// ErrUntrustedIssuer is returned when the signer differs from the loaded issuer.
	ErrUntrustedIssuer = errors.New("certificate signed by a different issuer")
	// ErrNotSucceeded is returned when issuing for a session that did not succeed.
	ErrNotSucceeded = errors.New("verification did not succeed")
)

// Settings are the static fields stamped on every certificate.
type Settings struct {
	Chain  string
	GasFee string
}

// Service issues, stores, and verifies certificates.
type Service struct {
	store    domain.CertificateStore
	signer   *domain.Identity
	settings Settings
	log      *slog.Logger
}

// New returns a certificate service. signer may be nil.
func New(
	store domain.CertificateStore,
	signer *domain.Identity,
	settings Settings,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:    store,
		signer:   signer,
		settings: settings,
		log:      logging.NewComponentLogger(logger, "certificate"),
	}
}

// Issue builds, signs, and stores a certificate for a successful run.
func (s *Service) Issue(snap domain.Snapshot) (domain.Certificate, error) {
	if snap.Status != domain.StatusSuccess {
		return domain.Certificate{}, fmt.Errorf("%w: status %s", ErrNotSucceeded, snap.Status)
	}
	suffix, err := crypto.RandomBase36(idLen)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("certificate id: %w", err)
	}
	issuedAt := snap.EndedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	cert := domain.Certificate{
		ID:         domain.CertificateID(IDPrefix + strings.ToUpper(suffix)),
		SessionID:  snap.ID,
		Chain:      s.settings.Chain,
		GasFee:     s.settings.GasFee,
		IssuedAt:   issuedAt.UTC().Truncate(time.Millisecond),
		DurationMS: snap.Elapsed().Milliseconds(),
	}
	if s.signer != nil {
		cert.IssuerKey = append([]byte(nil), s.signer.EdPub.Slice()...)
		cert.IssuerFingerprint = crypto.Fingerprint(s.signer.EdPub)
		msg, err := canonical(cert)
		if err != nil {
			return domain.Certificate{}, err
		}
		cert.Signature = crypto.SignEd25519(s.signer.EdPriv, msg)
	}

	if err := s.store.SaveCertificate(cert); err != nil {
		return domain.Certificate{}, fmt.Errorf("save certificate: %w", err)
	}
	s.log.Debug("certificate stored", "certificate_id", cert.ID.String(), "signed", cert.Signed())
	return cert, nil
}

// Get loads a certificate by id.
func (s *Service) Get(id domain.CertificateID) (domain.Certificate, error) {
	cert, ok, err := s.store.LoadCertificate(id)
	if err != nil {
		return domain.Certificate{}, err
	}
	if !ok {
		return domain.Certificate{}, fmt.Errorf("%w: %s", ErrCertificateNotFound, id)
	}
	return cert, nil
}

// List returns every stored certificate, oldest first.
func (s *Service) List() ([]domain.Certificate, error) {
	return s.store.ListCertificates()
}

// Verify checks the certificate signature. When an issuer is loaded the
// certificate must also be signed by that issuer.
func (s *Service) Verify(cert domain.Certificate) error {
	if !cert.Signed() {
		return ErrUnsigned
	}
	var pub domain.Ed25519Public
	if len(cert.IssuerKey) != len(pub) {
		return ErrBadSignature
	}
	copy(pub[:], cert.IssuerKey)
	if s.signer != nil && !bytes.Equal(pub.Slice(), s.signer.EdPub.Slice()) {
		return ErrUntrustedIssuer
	}
	if cert.IssuerFingerprint != crypto.Fingerprint(pub) {
		return ErrBadSignature
	}
	msg, err := canonical(cert)
	if err != nil {
		return err
	}
	if !crypto.VerifyEd25519(pub, msg, cert.Signature) {
		return ErrBadSignature
	}
	return nil
}

// canonical is the signed byte form: the JSON of cert without its signature.
func canonical(cert domain.Certificate) ([]byte, error) {
	cert.Signature = nil
	cert.IssuedAt = cert.IssuedAt.UTC()
	b, err := json.Marshal(cert)
	if err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return b, nil
}

var _ domain.CertificateService = (*Service)(nil)
