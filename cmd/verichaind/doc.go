// Command verichaind serves verification sessions, the wallet-connect
// handshake and the certificate ledger over HTTP.
//
// One instance per home directory: startup takes an exclusive file lock on
// <home>/verichaind.lock and exits if another daemon holds it. SIGINT and
// SIGTERM drain in-flight requests before the process exits.
package main
