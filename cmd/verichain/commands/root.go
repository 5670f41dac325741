package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"verichain/internal/app"
	"verichain/internal/client"
	"verichain/internal/config"
	"verichain/internal/logging"
)

var (
	home       string
	configPath string
	passphrase string
	serverURL  string

	settings *config.Config
	logger   *slog.Logger
	wire     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCommand().ExecuteContext(context.Background())
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "verichain",
		Short:         "Simulated identity verification and wallet connect",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closeWire()
			cfg, _, _, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if home != "" {
				cfg.HomeDir = home
			}
			if err := cfg.EnsureHome(); err != nil {
				return err
			}
			settings = cfg

			logger, err = logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			wire, err = app.NewWire(app.Config{
				Settings:   cfg,
				Passphrase: passphrase,
				Logger:     logger,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) { closeWire() },
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default from config, ~/.verichain)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/verichain/config.toml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", os.Getenv("VERICHAIN_PASSPHRASE"), "passphrase protecting the issuer key")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "verichaind base URL (e.g. http://127.0.0.1:7600)")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		verifyCmd(),
		walletsCmd(),
		walletCmd(),
		qrCmd(),
		credentialsCmd(),
		certificatesCmd(),
		configCmd(),
	)
	return root
}

// currentBackend picks the daemon client when --server is set.
func currentBackend() backend {
	if serverURL != "" {
		return client.NewHTTP(serverURL)
	}
	return localBackend{w: wire}
}

func closeWire() {
	if wire != nil {
		wire.Close()
		wire = nil
	}
}
