// Package config loads, normalizes, and validates verichain configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the VERICHAIN_HOME environment
// override. Timer knobs are stored as integer milliseconds in the file and
// exposed as time.Duration through accessor methods.
package config
