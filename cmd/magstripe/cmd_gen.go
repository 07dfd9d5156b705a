package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alovak/magstripe/internal/expiry"
	"github.com/alovak/magstripe/internal/pan"
	"github.com/alovak/magstripe/internal/swipe"
	"github.com/alovak/magstripe/magstripe"
	"github.com/spf13/cobra"
)

// maxNameLen is the Track 1 cardholder name field width.
const maxNameLen = 26

type genOptions struct {
	scheme        string
	prefix        string
	name          string
	years         int
	expiryYYMM    string
	discretionary string
}

func (c *cli) genCmd() *cobra.Command {
	opts := genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a synthetic swipe with a valid account number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := c.cfg.Location()
			if err != nil {
				return err
			}
			raw, err := generateSwipe(opts, time.Now(), loc)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, raw)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.scheme, "scheme", "visa", "visa|mastercard|amex|diners|discover")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "account number prefix (defaults to the scheme's first prefix)")
	cmd.Flags().StringVar(&opts.name, "name", "CARDHOLDER/TEST", "cardholder name as LAST/FIRST or FIRST LAST")
	cmd.Flags().IntVar(&opts.years, "years", 3, "validity in years from today")
	cmd.Flags().StringVar(&opts.expiryYYMM, "expiry", "", "expiry as YYMM, overrides --years")
	cmd.Flags().StringVar(&opts.discretionary, "discretionary", swipe.DefaultDiscretionary, "service code and discretionary data")
	return cmd
}

func generateSwipe(opts genOptions, now time.Time, loc *time.Location) (string, error) {
	scheme, ok := magstripe.LookupScheme(opts.scheme)
	if !ok {
		return "", fmt.Errorf("unknown scheme %q", opts.scheme)
	}
	prefix := opts.prefix
	if prefix == "" {
		prefix = scheme.Prefixes[0]
	}

	number, err := pan.Generate(prefix, scheme.Length)
	if err != nil {
		return "", err
	}
	if got, ok := magstripe.DetectScheme(number); !ok || got.Name != scheme.Name || !magstripe.Validate(number) {
		return "", fmt.Errorf("prefix %s is not a %s prefix", prefix, scheme.Name)
	}

	yymm := opts.expiryYYMM
	if yymm == "" {
		yymm = expiry.YYMM(now, opts.years, loc)
	}
	if err := expiry.ValidateYYMM(yymm); err != nil {
		return "", err
	}

	if strings.ContainsAny(opts.discretionary, "^=;?%") {
		return "", fmt.Errorf("discretionary data must not contain sentinels or separators")
	}

	last, first := swipe.SplitName(normalizeCardName(opts.name))
	if last == "" || first == "" {
		return "", fmt.Errorf("cardholder name needs a first and a last name")
	}

	return swipe.Build(swipe.Holder{
		PAN:           number,
		LastName:      last,
		FirstName:     first,
		ExpiryYYMM:    yymm,
		Discretionary: opts.discretionary,
	}), nil
}

// normalizeCardName upper-cases, collapses whitespace and cuts the name to
// the Track 1 field width in characters.
func normalizeCardName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	up := []rune(strings.ToUpper(strings.Join(strings.Fields(trimmed), " ")))
	if len(up) > maxNameLen {
		up = up[:maxNameLen]
	}
	return string(up)
}
