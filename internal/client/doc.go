// Package client talks to a running verichaind over HTTP.
package client
