// Package app wires application dependencies for the CLI and daemon.
//
// It builds the concrete stores and high-level services from Config,
// unlocking the issuer key when a passphrase is supplied, and exposes them
// via the Wire struct.
package app
