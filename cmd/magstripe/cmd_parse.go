package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/alovak/magstripe/magstripe"
	magiso "github.com/alovak/magstripe/magstripe/iso8583"
	"github.com/moov-io/iso8583"
	"github.com/spf13/cobra"
)

func (c *cli) parseCmd() *cobra.Command {
	var withISO bool

	cmd := &cobra.Command{
		Use:   "parse [swipe]",
		Short: "Decode one swipe given as an argument or typed on stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.swipeArg(args)
			if err != nil {
				return err
			}

			res, err := c.service().Decode(raw)
			if err != nil {
				return fmt.Errorf("swipe rejected (%s): %w", magstripe.KindOf(err), err)
			}

			enc := json.NewEncoder(c.out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}

			if !withISO {
				return nil
			}
			msg, err := magiso.NewAuthorizationRequest(raw)
			if err != nil {
				return err
			}
			if err := iso8583.Describe(msg, c.out); err != nil {
				return fmt.Errorf("describing message: %w", err)
			}
			if c.cfg.ShowFullPAN {
				packed, err := msg.Pack()
				if err != nil {
					return fmt.Errorf("packing message: %w", err)
				}
				fmt.Fprintf(c.out, "PACKED: %s\n", hex.EncodeToString(packed))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withISO, "iso8583", false, "also describe the 0100 authorization request built from the swipe")
	return cmd
}
