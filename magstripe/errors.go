package magstripe

import (
	"errors"
	"fmt"
)

// Kind classifies why a swipe could not be decoded.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyTrack
	KindBadFormatCode
	KindTrackParse
	KindNameParse
	KindInvalidCardNumber
	KindMissingTracks
	KindTrackMismatch
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindEmptyTrack:        "empty_track",
	KindBadFormatCode:     "bad_format_code",
	KindTrackParse:        "track_parse_error",
	KindNameParse:         "name_parse_error",
	KindInvalidCardNumber: "invalid_card_number",
	KindMissingTracks:     "missing_tracks",
	KindTrackMismatch:     "track_mismatch",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels for errors.Is. Each matches any *ParseError of the same Kind.
var (
	ErrEmptyTrack        = &ParseError{Kind: KindEmptyTrack, Msg: "blank track data"}
	ErrBadFormatCode     = &ParseError{Kind: KindBadFormatCode, Msg: "wrong track 1 format code"}
	ErrTrackParse        = &ParseError{Kind: KindTrackParse, Msg: "could not parse track"}
	ErrNameParse         = &ParseError{Kind: KindNameParse, Msg: "could not parse cardholder name"}
	ErrInvalidCardNumber = &ParseError{Kind: KindInvalidCardNumber, Msg: "card number did not validate"}
	ErrMissingTracks     = &ParseError{Kind: KindMissingTracks, Msg: "did not get track 1 and track 2"}
	ErrTrackMismatch     = &ParseError{Kind: KindTrackMismatch, Msg: "track 1 and track 2 data did not match"}
)

// ParseError is the only error type returned by this package.
// Track is 1 or 2 when the failure belongs to a single track, 0 otherwise.
type ParseError struct {
	Kind  Kind
	Track int
	Msg   string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or KindUnknown when err is not a *ParseError.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

func trackError(kind Kind, track int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Track: track, Msg: fmt.Sprintf(format, args...)}
}
