package swipe

import (
	"fmt"
	"strings"
)

// DefaultDiscretionary is the service code and discretionary data appended
// after the expiry when a Holder does not provide its own.
const DefaultDiscretionary = "2011000000000000"

// Holder is the data encoded onto a synthetic swipe.
type Holder struct {
	PAN           string
	LastName      string
	FirstName     string
	ExpiryYYMM    string
	Discretionary string
}

// Build renders h as a keyboard reader would type it:
//
//	%B<PAN>^<LAST>/<FIRST>^<YYMM><disc>?;<PAN>=<YYMM><disc>?
func Build(h Holder) string {
	disc := h.Discretionary
	if disc == "" {
		disc = DefaultDiscretionary
	}
	return Track1(h, disc) + ";" + Track2(h, disc)
}

func Track1(h Holder, disc string) string {
	return fmt.Sprintf("%%B%s^%s/%s^%s%s?", h.PAN, h.LastName, h.FirstName, h.ExpiryYYMM, disc)
}

// Track2 is rendered without its start sentinel.
func Track2(h Holder, disc string) string {
	return fmt.Sprintf("%s=%s%s?", h.PAN, h.ExpiryYYMM, disc)
}

// SplitName turns "LAST/FIRST" or "FIRST LAST" into last and first name.
func SplitName(name string) (last, first string) {
	name = strings.ToUpper(strings.Join(strings.Fields(name), " "))
	if l, f, ok := strings.Cut(name, "/"); ok {
		return strings.TrimSpace(l), strings.TrimSpace(f)
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return name, ""
	}
	return name[idx+1:], name[:idx]
}
