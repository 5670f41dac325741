package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"verichain/internal/client"
	"verichain/internal/domain"
	"verichain/internal/qr"
)

func qrCmd() *cobra.Command {
	var (
		parse   string
		session string
	)
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Print a QR display payload, or parse one with --parse",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if parse != "" {
				p, err := qr.Decode(parse)
				if err != nil {
					return err
				}
				rows := [][]string{
					{"Type", p.Type},
					{"Session", p.Session},
					{"Issued", p.Time().UTC().Format(time.RFC3339Nano)},
					{"Endpoint", p.Endpoint},
				}
				fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
				return nil
			}

			var (
				p   qr.Payload
				err error
			)
			if session != "" {
				if serverURL == "" {
					return fmt.Errorf("--session needs --server")
				}
				p, err = client.NewHTTP(serverURL).SessionQR(cmd.Context(), domain.SessionID(session))
			} else {
				p, err = qr.New(settings.QR.Type, settings.QR.Endpoint, time.Now())
			}
			if err != nil {
				return err
			}
			text, err := p.Encode()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}
	cmd.Flags().StringVar(&parse, "parse", "", "payload JSON to decode")
	cmd.Flags().StringVar(&session, "session", "", "fetch the payload for a daemon session")
	return cmd
}
