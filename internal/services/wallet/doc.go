// Package wallet simulates the wallet-connect handshake.
//
// Selecting a provider arms a single delayed transition to "connected".
// While that transition is pending further Connect calls are rejected, and
// Disconnect cancels it so a late timer can never reconnect.
package wallet
