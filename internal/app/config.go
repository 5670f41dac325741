package app

import (
	"log/slog"

	"verichain/internal/config"
	"verichain/internal/schedule"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings   *config.Config     // loaded configuration
	Passphrase string             // optional; unlocks the issuer key for signing
	Logger     *slog.Logger       // optional; defaults to a no-op logger
	Scheduler  schedule.Scheduler // optional; defaults to wall-clock timers
}
