package magstripe_test

import (
	"testing"

	"github.com/alovak/magstripe/magstripe"
	"github.com/stretchr/testify/require"
)

func TestParseTrack1(t *testing.T) {
	t1, err := magstripe.ParseTrack1("%B378282246310005^DOE/JANE^3012101?")
	require.NoError(t, err)
	require.Equal(t, magstripe.Track1{
		Account:     "378282246310005",
		ExpiryMonth: "12",
		ExpiryYear:  "30",
		Name:        "JANE DOE",
	}, t1)

	// start sentinel is not checked, only indexed past
	t1, err = magstripe.ParseTrack1("XB4242424242424242^A/B^1505?")
	require.NoError(t, err)
	require.Equal(t, "B A", t1.Name)

	// expiry is sliced, not validated
	t1, err = magstripe.ParseTrack1("%B4242424242424242^A/B^9999?")
	require.NoError(t, err)
	require.Equal(t, "99", t1.ExpiryMonth)

	// empty name parts are allowed
	t1, err = magstripe.ParseTrack1("%B4242424242424242^/^1505?")
	require.NoError(t, err)
	require.Equal(t, " ", t1.Name)

	// separators in the account number are accepted and kept
	t1, err = magstripe.ParseTrack1("%B4242 4242 4242 4242^A/B^1505?")
	require.NoError(t, err)
	require.Equal(t, "4242 4242 4242 4242", t1.Account)
}

func TestParseTrack1_Errors(t *testing.T) {
	cases := []struct {
		in   string
		kind magstripe.Kind
	}{
		{"", magstripe.KindEmptyTrack},
		{"%", magstripe.KindTrackParse},
		{"%B", magstripe.KindTrackParse},
		{"%B?", magstripe.KindTrackParse},
		{"%b4242424242424242^A/B^1505?", magstripe.KindBadFormatCode},
		{"%B4242424242424242^A/B?", magstripe.KindTrackParse},
		{"%B4242424242424242^A/B^150?", magstripe.KindTrackParse},
		{"%B4242424242424242^AB^1505?", magstripe.KindNameParse},
		{"%B1234567890123456^A/B^1505?", magstripe.KindInvalidCardNumber},
	}
	for _, c := range cases {
		_, err := magstripe.ParseTrack1(c.in)
		require.Equal(t, c.kind, magstripe.KindOf(err), c.in)
		if err != nil {
			require.Equal(t, 1, err.(*magstripe.ParseError).Track)
		}
	}
}

func TestParseTrack2(t *testing.T) {
	t2, err := magstripe.ParseTrack2("4242424242424242=15052011000000000000?")
	require.NoError(t, err)
	require.Equal(t, magstripe.Track2{
		Account:     "4242424242424242",
		ExpiryMonth: "05",
		ExpiryYear:  "15",
	}, t2)

	// any final character is treated as the end sentinel
	t2, err = magstripe.ParseTrack2("4242424242424242=1505X")
	require.NoError(t, err)
	require.Equal(t, "05", t2.ExpiryMonth)

	// a leading start sentinel is not stripped; it stays in the account number
	t2, err = magstripe.ParseTrack2(";4242424242424242=1505?")
	require.NoError(t, err)
	require.Equal(t, ";4242424242424242", t2.Account)
}

func TestParseTrack2_Errors(t *testing.T) {
	cases := []struct {
		in   string
		kind magstripe.Kind
	}{
		{"", magstripe.KindEmptyTrack},
		{"?", magstripe.KindTrackParse},
		{"4242424242424242?", magstripe.KindTrackParse},
		{"4242424242424242=150?", magstripe.KindTrackParse},
		{"4242424242424242=15=05?", magstripe.KindTrackParse},
		{"00000000=201100100900083753?", magstripe.KindInvalidCardNumber},
	}
	for _, c := range cases {
		_, err := magstripe.ParseTrack2(c.in)
		require.Equal(t, c.kind, magstripe.KindOf(err), c.in)
		if err != nil {
			require.Equal(t, 2, err.(*magstripe.ParseError).Track)
		}
	}
}
