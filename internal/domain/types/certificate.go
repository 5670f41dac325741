package types

import "time"

// Certificate records a successful verification. Signature covers every
// other field and is empty when no issuer key was loaded.
type Certificate struct {
	ID                CertificateID `json:"id"`
	SessionID         SessionID     `json:"session_id"`
	Chain             string        `json:"chain"`
	GasFee            string        `json:"gas_fee"`
	IssuedAt          time.Time     `json:"issued_at"`
	DurationMS        int64         `json:"duration_ms"`
	IssuerKey         []byte        `json:"issuer_key,omitempty"`
	IssuerFingerprint Fingerprint   `json:"issuer_fingerprint,omitempty"`
	Signature         []byte        `json:"signature,omitempty"`
}

// Signed reports whether the certificate carries an issuer signature.
func (c Certificate) Signed() bool { return len(c.Signature) > 0 }
