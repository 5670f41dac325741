package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.HomeDir == "" {
		return errors.New("home_dir must be set")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	if c.Verification.TickIntervalMS <= 0 {
		return errors.New("verification.tick_interval_ms must be positive")
	}
	if c.Verification.Step <= 0 || c.Verification.Step > 100 {
		return fmt.Errorf("verification.step must be in 1..100, got %d", c.Verification.Step)
	}
	if c.Wallet.ConnectDelayMS <= 0 {
		return errors.New("wallet.connect_delay_ms must be positive")
	}
	if c.QR.Type == "" {
		return errors.New("qr.type must be set")
	}
	if u, err := url.Parse(c.QR.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("qr.endpoint: invalid URL %q", c.QR.Endpoint)
	}
	if c.API.Bind == "" {
		return errors.New("api.bind must be set")
	}
	return nil
}
