package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gofrs/flock"

	"verichain/internal/domain"
)

const (
	certificatesFilename = "certificates.json"
	certificatesLockname = "certificates.lock"
)

// CertificateFileStore persists issued certificates as one JSON map.
//
// The CLI and the daemon may share a home directory, so read-modify-write
// cycles also take an advisory file lock.
type CertificateFileStore struct {
	dir  string
	mu   sync.Mutex
	lock *flock.Flock
}

// NewCertificateFileStore returns a CertificateFileStore rooted at dir.
func NewCertificateFileStore(dir string) *CertificateFileStore {
	return &CertificateFileStore{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, certificatesLockname)),
	}
}

// SaveCertificate inserts or replaces cert.
func (s *CertificateFileStore) SaveCertificate(cert domain.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, certificatesFilename)
	return withFileLock(s.lock, true, func() error {
		certs := map[domain.CertificateID]domain.Certificate{}
		if err := readJSON(path, &certs); err != nil {
			return fmt.Errorf("read certificates: %w", err)
		}
		certs[cert.ID] = cert
		return writeJSON(path, certs, 0o600)
	})
}

// LoadCertificate retrieves a certificate by id.
func (s *CertificateFileStore) LoadCertificate(id domain.CertificateID) (domain.Certificate, bool, error) {
	certs, err := s.readAll()
	if err != nil {
		return domain.Certificate{}, false, err
	}
	cert, ok := certs[id]
	return cert, ok, nil
}

// ListCertificates returns every certificate, oldest first.
func (s *CertificateFileStore) ListCertificates() ([]domain.Certificate, error) {
	certs, err := s.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Certificate, 0, len(certs))
	for _, c := range certs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IssuedAt.Equal(out[j].IssuedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].IssuedAt.Before(out[j].IssuedAt)
	})
	return out, nil
}

func (s *CertificateFileStore) readAll() (map[domain.CertificateID]domain.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	certs := map[domain.CertificateID]domain.Certificate{}
	err := withFileLock(s.lock, false, func() error {
		return readJSON(filepath.Join(s.dir, certificatesFilename), &certs)
	})
	if err != nil {
		return nil, fmt.Errorf("read certificates: %w", err)
	}
	return certs, nil
}

// Compile-time assertion that CertificateFileStore implements domain.CertificateStore.
var _ domain.CertificateStore = (*CertificateFileStore)(nil)
