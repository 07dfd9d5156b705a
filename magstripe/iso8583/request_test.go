package iso8583_test

import (
	"bytes"
	"testing"

	"github.com/alovak/magstripe/magstripe"
	magiso "github.com/alovak/magstripe/magstripe/iso8583"
	"github.com/moov-io/iso8583"
	"github.com/stretchr/testify/require"
)

const validSwipe = "%B4242424242424242^SURNAME/FIRSTNAME I^15052011000000000000?;4242424242424242=15052011000000000000?"

func TestNewAuthorizationRequest(t *testing.T) {
	msg, err := magiso.NewAuthorizationRequest(validSwipe)
	require.NoError(t, err)

	mti, err := msg.GetMTI()
	require.NoError(t, err)
	require.Equal(t, "0100", mti)

	want := map[int]string{
		2:  "4242424242424242",
		14: "1505",
		22: "902",
		35: "4242424242424242=15052011000000000000",
		45: "B4242424242424242^SURNAME/FIRSTNAME I^15052011000000000000",
	}
	for id, value := range want {
		got, err := msg.GetString(id)
		require.NoError(t, err)
		require.Equal(t, value, got, "field %d", id)
	}
}

func TestNewAuthorizationRequest_DescribesPopulatedBitmap(t *testing.T) {
	msg, err := magiso.NewAuthorizationRequest(validSwipe)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, iso8583.Describe(msg, &out))

	// fields 2, 14, 22, 35 and 45
	require.Contains(t, out.String(), "4004040020080000")
}

func TestPack_RoundTrip(t *testing.T) {
	packed, err := magiso.Pack(validSwipe)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(packed, []byte("0100")))

	msg := iso8583.NewMessage(magiso.Spec)
	require.NoError(t, msg.Unpack(packed))

	pan, err := msg.GetString(2)
	require.NoError(t, err)
	require.Equal(t, "4242424242424242", pan)

	track2, err := msg.GetString(35)
	require.NoError(t, err)
	require.Equal(t, "4242424242424242=15052011000000000000", track2)
}

func TestNewAuthorizationRequest_RejectsBadSwipe(t *testing.T) {
	_, err := magiso.NewAuthorizationRequest(";4242424242424242=1505?")
	require.ErrorIs(t, err, magstripe.ErrEmptyTrack)

	_, err = magiso.Pack("%B4242424242424242^A/B^1505?;4111111111111111=1505?")
	require.ErrorIs(t, err, magstripe.ErrTrackMismatch)
}
