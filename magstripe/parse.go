// Package magstripe decodes the text a keyboard-emulating magnetic stripe
// reader types for an ISO 7813 financial card and cross-checks Track 1
// against Track 2.
//
// All functions are pure and safe for concurrent use.
package magstripe

import "strings"

const trackSep = ";"

// SplitTracks splits a raw swipe into its Track 1 and Track 2 parts.
func SplitTracks(raw string) (track1, track2 string, err error) {
	parts := strings.Split(raw, trackSep)
	if len(parts) != 2 {
		return "", "", &ParseError{Kind: KindMissingTracks, Msg: "did not get expected track 1 and track 2"}
	}
	return parts[0], parts[1], nil
}

// Parse decodes both tracks of a raw swipe and returns the card only when
// they agree on account number and expiry. Track 1 is decoded first, so its
// error is reported even if Track 2 is also bad.
func Parse(raw string) (Card, error) {
	s1, s2, err := SplitTracks(raw)
	if err != nil {
		return Card{}, err
	}

	t1, err := ParseTrack1(s1)
	if err != nil {
		return Card{}, err
	}
	t2, err := ParseTrack2(s2)
	if err != nil {
		return Card{}, err
	}

	if !t1.agrees(t2) {
		return Card{}, &ParseError{Kind: KindTrackMismatch, Msg: "track 1 and track 2 data did not match"}
	}
	return Card(t1), nil
}
