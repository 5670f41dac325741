package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"verichain/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		opts       Options
	)
	cmd := &cobra.Command{
		Use:           "verichaind",
		Short:         "Verification daemon",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return Run(ctx, cfg, opts)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/verichain/config.toml)")
	cmd.Flags().StringVar(&opts.Bind, "bind", "", "listen address (overrides [api] bind)")
	cmd.Flags().StringVarP(&opts.Passphrase, "passphrase", "p", os.Getenv("VERICHAIN_PASSPHRASE"), "passphrase unlocking the issuer key")
	return cmd
}
