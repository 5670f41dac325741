package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Verification tunes the progress simulator.
type Verification struct {
	TickIntervalMS int `toml:"tick_interval_ms"`
	Step           int `toml:"step"`
}

// Wallet tunes the wallet-connect handshake.
type Wallet struct {
	ConnectDelayMS int `toml:"connect_delay_ms"`
}

// QR configures the display payload.
type QR struct {
	Type     string `toml:"type"`
	Endpoint string `toml:"endpoint"`
}

// API configures the daemon listener.
type API struct {
	Bind string `toml:"bind"`
}

// Certificate holds the static fields stamped on issued certificates.
type Certificate struct {
	Chain  string `toml:"chain"`
	GasFee string `toml:"gas_fee"`
}

// Config is the root configuration.
type Config struct {
	HomeDir   string `toml:"home_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Verification Verification `toml:"verification"`
	Wallet       Wallet       `toml:"wallet"`
	QR           QR           `toml:"qr"`
	API          API          `toml:"api"`
	Certificate  Certificate  `toml:"certificate"`
}

// DefaultConfigPath returns the expanded default config location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/verichain/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// yields defaults; the returned bool reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		def, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = def
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", expanded)
	}
	return expanded, true, nil
}

// TickInterval is the period between progress ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Verification.TickIntervalMS) * time.Millisecond
}

// ConnectDelay is the wallet handshake delay.
func (c *Config) ConnectDelay() time.Duration {
	return time.Duration(c.Wallet.ConnectDelayMS) * time.Millisecond
}

// EnsureHome creates the home directory with owner-only permissions.
func (c *Config) EnsureHome() error {
	if err := os.MkdirAll(c.HomeDir, 0o700); err != nil {
		return fmt.Errorf("create home directory %q: %w", c.HomeDir, err)
	}
	return nil
}

func (c *Config) normalize() error {
	if env := strings.TrimSpace(os.Getenv("VERICHAIN_HOME")); env != "" {
		c.HomeDir = env
	}
	home, err := expandPath(strings.TrimSpace(c.HomeDir))
	if err != nil {
		return err
	}
	c.HomeDir = home
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.QR.Endpoint = strings.TrimSpace(c.QR.Endpoint)
	c.API.Bind = strings.TrimSpace(c.API.Bind)
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
