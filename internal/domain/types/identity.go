package types

// Identity holds the issuer's long-term Ed25519 signing keys.
type Identity struct {
	EdPub  Ed25519Public  `json:"edpub"`
	EdPriv Ed25519Private `json:"edpriv"`
}
