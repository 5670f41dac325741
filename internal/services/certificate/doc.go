// Package certificate issues and checks verification certificates.
//
// A certificate is issued for every successful verification run. When an
// issuer identity is loaded the certificate is signed with its Ed25519 key
// over the canonical JSON of every other field; otherwise it is stored
// unsigned.
package certificate
