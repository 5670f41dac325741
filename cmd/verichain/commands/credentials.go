package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func credentialsCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "List credentials in the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := currentBackend().Credentials(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(creds))
			for _, c := range creds {
				if kind != "" && c.Type != kind {
					continue
				}
				rows = append(rows, []string{c.Title, c.Type, c.Status, c.Issuer, c.Date})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Title", "Type", "Status", "Issuer", "Date"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "only show credentials of this type")
	return cmd
}
