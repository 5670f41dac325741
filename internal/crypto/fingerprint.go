package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"verichain/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a signing public key:
// SHA-256 truncated to 10 bytes (20 hex chars).
func Fingerprint(pub domain.Ed25519Public) domain.Fingerprint {
	sum := sha256.Sum256(pub.Slice())
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
