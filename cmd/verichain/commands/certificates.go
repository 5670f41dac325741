package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"verichain/internal/domain"
)

func certificatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certs"},
		Short:   "List, show, or check verification certificates",
	}
	cmd.AddCommand(certificatesListCmd(), certificatesShowCmd(), certificatesVerifyCmd())
	return cmd
}

func certificatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List issued certificates",
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := currentBackend().Certificates(cmd.Context())
			if err != nil {
				return err
			}
			if len(certs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No certificates.")
				return nil
			}
			rows := make([][]string, 0, len(certs))
			for _, c := range certs {
				rows = append(rows, []string{
					c.ID.String(),
					c.IssuedAt.Local().Format(time.DateTime),
					c.Chain,
					time.Duration(c.DurationMS * int64(time.Millisecond)).String(),
					yesNo(c.Signed()),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Issued", "Chain", "Duration", "Signed"}, rows, 3))
			return nil
		},
	}
}

func certificatesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := currentBackend().Certificate(cmd.Context(), domain.CertificateID(args[0]))
			if err != nil {
				return err
			}
			issuer := c.IssuerFingerprint.String()
			if issuer == "" {
				issuer = "(unsigned)"
			}
			rows := [][]string{
				{"ID", c.ID.String()},
				{"Session", c.SessionID.String()},
				{"Issued", c.IssuedAt.UTC().Format(time.RFC3339Nano)},
				{"Chain", c.Chain},
				{"Gas fee", c.GasFee},
				{"Duration", fmt.Sprintf("%dms", c.DurationMS)},
				{"Issuer", issuer},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}

func certificatesVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Check a certificate signature (against the local issuer key when unlocked)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := currentBackend().Certificate(cmd.Context(), domain.CertificateID(args[0]))
			if err != nil {
				return err
			}
			if err := wire.Certificates.Verify(c); err != nil {
				return fmt.Errorf("certificate %s: %w", c.ID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Certificate %s is valid (issuer %s).\n", c.ID, c.IssuerFingerprint)
			return nil
		},
	}
}
