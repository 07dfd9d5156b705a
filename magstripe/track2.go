package magstripe

import "strings"

const (
	track2FieldSep = "="
	track2Fields   = 2
)

// ParseTrack2 decodes a Track 2 payload of the form <PAN>=<YYMM>...<end sentinel>.
//
// Only the end sentinel is removed. Keyboard readers emit ';' as the Track 2
// start sentinel, which is consumed as the track separator by Parse, so the
// input is expected to arrive without it.
func ParseTrack2(s string) (Track2, error) {
	if s == "" {
		return Track2{}, trackError(KindEmptyTrack, 2, "blank track 2 data")
	}
	payload := s[:len(s)-endSentinelLen]

	fields := strings.Split(payload, track2FieldSep)
	if len(fields) != track2Fields {
		return Track2{}, trackError(KindTrackParse, 2, "could not parse track 2: got %d fields, want %d", len(fields), track2Fields)
	}
	cardnumber, data := fields[0], fields[1]

	expyear, expmonth, ok := splitExpiry(data)
	if !ok {
		return Track2{}, trackError(KindTrackParse, 2, "could not parse track 2: expiry too short")
	}

	if !Validate(cardnumber) {
		return Track2{}, trackError(KindInvalidCardNumber, 2, "card number in track 2 did not validate")
	}

	return Track2{
		Account:     cardnumber,
		ExpiryMonth: expmonth,
		ExpiryYear:  expyear,
	}, nil
}
