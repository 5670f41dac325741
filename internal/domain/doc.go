// Package domain holds the verification, wallet and certificate models and
// the service/store contracts between packages. Types live in types/,
// contracts in interfaces/; this package re-exports both so callers import
// one path.
package domain
