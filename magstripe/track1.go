package magstripe

import "strings"

// ISO 7813 Track 1 layout: %B<PAN>^<LAST>/<FIRST>^<YYMM><service code, discretionary>?
const (
	track1FormatCodeIdx = 1
	track1FormatCode    = 'B'
	track1HeaderLen     = 2 // start sentinel + format code
	endSentinelLen      = 1

	track1FieldSep = "^"
	track1Fields   = 3
	nameSep        = "/"

	expYearStart  = 0
	expYearEnd    = 2
	expMonthStart = 2
	expMonthEnd   = 4
)

// ParseTrack1 decodes a Track 1 string including its start sentinel, format
// code and end sentinel. The start sentinel itself is not checked.
func ParseTrack1(s string) (Track1, error) {
	if s == "" {
		return Track1{}, trackError(KindEmptyTrack, 1, "blank track 1 data")
	}
	if len(s) <= track1FormatCodeIdx {
		return Track1{}, trackError(KindTrackParse, 1, "could not parse track 1: too short")
	}
	if s[track1FormatCodeIdx] != track1FormatCode {
		return Track1{}, trackError(KindBadFormatCode, 1, "wrong track 1 format code %q (want B)", s[track1FormatCodeIdx])
	}

	payload := ""
	if len(s) >= track1HeaderLen+endSentinelLen {
		payload = s[track1HeaderLen : len(s)-endSentinelLen]
	}

	fields := strings.Split(payload, track1FieldSep)
	if len(fields) != track1Fields {
		return Track1{}, trackError(KindTrackParse, 1, "could not parse track 1: got %d fields, want %d", len(fields), track1Fields)
	}
	cardnumber, name, data := fields[0], fields[1], fields[2]

	names := strings.Split(name, nameSep)
	if len(names) != 2 {
		return Track1{}, trackError(KindNameParse, 1, "could not parse cardholder name")
	}
	lastname, firstname := names[0], names[1]

	expyear, expmonth, ok := splitExpiry(data)
	if !ok {
		return Track1{}, trackError(KindTrackParse, 1, "could not parse track 1: expiry too short")
	}

	if !Validate(cardnumber) {
		return Track1{}, trackError(KindInvalidCardNumber, 1, "card number in track 1 did not validate")
	}

	return Track1{
		Account:     cardnumber,
		ExpiryMonth: expmonth,
		ExpiryYear:  expyear,
		Name:        strings.TrimSpace(firstname) + " " + strings.TrimSpace(lastname),
	}, nil
}

// splitExpiry takes YY and MM from the front of a track's data field.
func splitExpiry(data string) (yy, mm string, ok bool) {
	if len(data) < expMonthEnd {
		return "", "", false
	}
	return data[expYearStart:expYearEnd], data[expMonthStart:expMonthEnd], true
}
