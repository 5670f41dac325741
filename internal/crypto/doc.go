// Package crypto exposes the minimal primitives used by verichain.
//
// Contents
//
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - EIP-55 checksummed and abbreviated account addresses
//     (ChecksumAddress, ShortAddress)
//   - Random base36 labels for session and certificate ids (RandomBase36)
//   - Zeroing decrypted key material (Wipe)
//
// # Notes
//
// Key functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations.
package crypto
