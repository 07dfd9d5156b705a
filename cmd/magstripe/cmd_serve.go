package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/magstripe/reader"
	"github.com/spf13/cobra"
)

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reader HTTP service until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := reader.NewApp(c.logger, c.cfg)
			if err := app.Start(); err != nil {
				return err
			}
			<-ctx.Done()
			app.Shutdown()
			return nil
		},
	}
	cmd.Flags().StringVar(&c.cfg.HTTPAddr, "addr", c.cfg.HTTPAddr, "listen address")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
