// Package store provides file-based persistence for verichain.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking; the certificate store additionally takes an advisory
// file lock so separate processes sharing a home directory do not lose
// writes.
//
// The package includes stores for:
//   - The issuer identity, encrypted under a passphrase (IdentityFileStore)
//   - Issued verification certificates (CertificateFileStore)
package store
