package main

import (
	"encoding/json"
	"time"

	"github.com/alovak/magstripe/internal/readerclient"
	"github.com/spf13/cobra"
)

func (c *cli) sendCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "send [swipe]",
		Short: "Post a swipe to a running reader service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.swipeArg(args)
			if err != nil {
				return err
			}

			client := readerclient.New(addr, nil)
			client.HTTP.Timeout = timeout
			res, err := client.Decode(cmdContext(cmd), raw)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "http://localhost:9090", "reader service base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}
