package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alovak/magstripe/internal/batch"
	"github.com/spf13/cobra"
)

func (c *cli) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <swipes.csv> [results.csv]",
		Short: "Decode a CSV file with a swipe column",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			var out io.Writer = c.out
			if len(args) == 2 {
				f, err := os.Create(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			runner := batch.NewRunner(c.service(), c.cfg.Workers, c.logger)
			sum, err := runner.Run(cmdContext(cmd), in, out)
			if err != nil {
				return err
			}
			if sum.Rejected > 0 {
				return fmt.Errorf("%d of %d swipes rejected", sum.Rejected, sum.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&c.cfg.Workers, "workers", c.cfg.Workers, "number of concurrent decoders")
	return cmd
}
