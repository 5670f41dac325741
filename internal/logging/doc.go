// Package logging assembles structured slog loggers used across verichain.
//
// It selects a console (text) or JSON handler from configuration, exposes a
// no-op logger for tests and wiring code that cannot fail, and tags
// component loggers with a standard attribute.
package logging
