package iso8583

import (
	"fmt"

	"github.com/alovak/magstripe/magstripe"
	"github.com/moov-io/iso8583"
)

const (
	MTIAuthorizationRequest = "0100"

	// full magnetic stripe read, no PIN entry capability
	POSEntryModeMagstripe = "902"
)

// NewAuthorizationRequest decodes raw and, when both tracks agree, returns an
// authorization request carrying the account, expiry and both tracks without
// their sentinels. The message is packed once so its bitmap is populated.
// Nothing here sends the message anywhere.
func NewAuthorizationRequest(raw string) (*iso8583.Message, error) {
	msg, _, err := build(raw)
	return msg, err
}

// Pack is NewAuthorizationRequest returning the packed bytes.
func Pack(raw string) ([]byte, error) {
	_, packed, err := build(raw)
	return packed, err
}

func build(raw string) (*iso8583.Message, []byte, error) {
	card, err := magstripe.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding swipe: %w", err)
	}
	track1, track2, err := magstripe.SplitTracks(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding swipe: %w", err)
	}

	msg := iso8583.NewMessage(Spec)
	msg.MTI(MTIAuthorizationRequest)

	fields := map[int]string{
		2:  card.Account,
		14: card.ExpiryYYMM(),
		22: POSEntryModeMagstripe,
		35: track2Data(track2),
		45: track1Data(track1),
	}
	for id, value := range fields {
		if err := msg.Field(id, value); err != nil {
			return nil, nil, fmt.Errorf("setting field %d: %w", id, err)
		}
	}

	packed, err := msg.Pack()
	if err != nil {
		return nil, nil, fmt.Errorf("packing message: %w", err)
	}
	return msg, packed, nil
}

// track1Data drops the start sentinel and the end sentinel; the format code stays.
func track1Data(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}

// track2Data drops the end sentinel. The start sentinel was already consumed
// as the track separator.
func track2Data(s string) string {
	if s == "" {
		return ""
	}
	return s[:len(s)-1]
}
