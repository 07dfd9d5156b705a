// Magstripe decodes swipes typed by a keyboard-emulating magnetic stripe
// reader, either one at a time, from a CSV file, or as an HTTP service.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alovak/magstripe/reader"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type cli struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	cfg    *reader.Config
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{
		in:     in,
		out:    out,
		logger: slog.New(slog.NewTextHandler(errOut, nil)),
		cfg:    reader.ConfigFromEnv(),
	}

	root := &cobra.Command{
		Use:           "magstripe",
		Short:         "Decode ISO 7813 magnetic stripe swipes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&c.cfg.ExpiryTZ, "tz", c.cfg.ExpiryTZ, "IANA timezone used for expiry checks")
	root.PersistentFlags().BoolVar(&c.cfg.ShowFullPAN, "show-full-pan", c.cfg.ShowFullPAN, "print full account numbers (DANGEROUS)")

	root.AddCommand(
		c.parseCmd(),
		c.batchCmd(),
		c.genCmd(),
		c.serveCmd(),
		c.sendCmd(),
	)
	return root
}

// swipeArg returns the swipe given on the command line, or the first line of
// stdin as a keyboard reader types it.
func (c *cli) swipeArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading swipe: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" && err == io.EOF {
		return "", fmt.Errorf("no swipe given")
	}
	return line, nil
}

func (c *cli) service() *reader.Service {
	loc, err := c.cfg.Location()
	if err != nil {
		c.logger.Info("invalid timezone; using default UTC", slog.String("tz", c.cfg.ExpiryTZ), slog.Any("err", err))
		loc = nil
	}
	return reader.NewService(c.cfg, loc)
}
