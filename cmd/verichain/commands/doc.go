// Package commands defines the verichain CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init                    Create the issuer key
//   - fingerprint             Print the issuer fingerprint
//   - verify                  Run a verification session and watch its progress
//   - wallets                 List wallet providers
//   - wallet connect <id>     Connect a wallet (simulated handshake)
//   - wallet status           Show the wallet connection
//   - wallet disconnect       Drop the wallet connection
//   - qr                      Print or parse a QR display payload
//   - credentials             List vault credentials
//   - certificates list|show|verify
//   - config init             Write a sample config file
//
// # Implementation
//
// The root command loads the TOML config, builds the logger and the
// dependency graph before any subcommand runs. With --server the commands
// talk to a running verichaind instead of the in-process services; wallet
// state lives in the daemon, so wallet status and disconnect need it.
package commands
