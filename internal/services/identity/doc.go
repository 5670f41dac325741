// Package identity manages creation, encryption and loading of the issuer
// identity that signs verification certificates.
//
// It enforces passphrase policy, generates an Ed25519 key pair, and
// persists it via the domain.IdentityStore.
package identity
