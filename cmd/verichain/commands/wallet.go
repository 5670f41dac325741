package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"verichain/internal/crypto"
	"verichain/internal/domain"
)

func walletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "List wallet providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := currentBackend().Wallets(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(providers))
			for _, p := range providers {
				rows = append(rows, []string{p.ID.String(), p.Name, p.Description, p.Users, yesNo(p.Available)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Description", "Users", "Available"}, rows, 3))
			return nil
		},
	}
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Connect, inspect, or drop the wallet connection",
	}
	cmd.AddCommand(walletConnectCmd(), walletStatusCmd(), walletDisconnectCmd())
	return cmd
}

func walletConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <wallet-id>",
		Short: "Connect a wallet and wait for the handshake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b := currentBackend()
			conn, err := b.ConnectWallet(ctx, domain.WalletID(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Connecting to %s...\n", conn.Selected)

			// The in-process connector resolves on its own timer; there is
			// no daemon to ask.
			if serverURL == "" {
				err = poll(ctx, pollInterval(), func() (bool, error) {
					conn = wire.Wallet.State()
					return !conn.Pending, nil
				})
			} else {
				err = poll(ctx, pollInterval(), func() (bool, error) {
					var err error
					conn, err = b.WalletState(ctx)
					return err == nil && !conn.Pending, err
				})
			}
			if err != nil {
				return err
			}
			printConnection(out, conn)
			return nil
		},
	}
}

func walletStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the wallet connection held by verichaind",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := currentBackend().WalletState(cmd.Context())
			if err != nil {
				return err
			}
			printConnection(cmd.OutOrStdout(), conn)
			return nil
		},
	}
}

func walletDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Drop the wallet connection held by verichaind",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := currentBackend().DisconnectWallet(cmd.Context())
			if err != nil {
				return err
			}
			printConnection(cmd.OutOrStdout(), conn)
			return nil
		},
	}
}

func printConnection(out io.Writer, conn domain.Connection) {
	switch {
	case conn.Pending:
		fmt.Fprintf(out, "Connecting to %s...\n", conn.Selected)
		return
	case !conn.Connected || conn.Account == nil:
		fmt.Fprintln(out, "Not connected.")
		return
	}
	a := conn.Account
	rows := [][]string{
		{"Wallet", conn.Selected.String()},
		{"Address", crypto.ShortAddress(a.Address)},
		{"Balance", a.Balance + " " + a.Symbol},
		{"Network", a.Network},
		{"Credentials", fmt.Sprint(a.Credentials)},
		{"Verifications", fmt.Sprint(a.Verifications)},
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
}
