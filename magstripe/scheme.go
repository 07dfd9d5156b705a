package magstripe

import (
	"strings"

	"github.com/alovak/magstripe/internal/pan"
)

// Scheme is a card brand recognised by its IIN prefix and PAN length.
type Scheme struct {
	Name     string
	Prefixes []string
	Length   int
}

// Schemes is the issuer match table used by Validate. A PAN matches an entry
// when it has exactly Length digits and starts with one of Prefixes.
var Schemes = []Scheme{
	{Name: "visa", Prefixes: []string{"4"}, Length: 16},
	{Name: "mastercard", Prefixes: []string{"51", "52", "53", "54", "55"}, Length: 16},
	{Name: "amex", Prefixes: []string{"34", "37"}, Length: 15},
	{Name: "diners", Prefixes: []string{"30", "36", "38"}, Length: 14},
	{Name: "discover", Prefixes: []string{"6011"}, Length: 16},
}

func (s Scheme) matches(digits string) bool {
	if len(digits) != s.Length {
		return false
	}
	for _, p := range s.Prefixes {
		if strings.HasPrefix(digits, p) {
			return true
		}
	}
	return false
}

// DetectScheme finds the scheme whose prefix and length fit digits exactly.
// digits must already be stripped of separators.
func DetectScheme(digits string) (Scheme, bool) {
	if !pan.IsDigits(digits) {
		return Scheme{}, false
	}
	for _, s := range Schemes {
		if s.matches(digits) {
			return s, true
		}
	}
	return Scheme{}, false
}

// LookupScheme returns the table entry with the given name.
func LookupScheme(name string) (Scheme, bool) {
	for _, s := range Schemes {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scheme{}, false
}

// Validate reports whether candidate is a structurally valid card number for
// a known scheme and passes the Luhn check. Any non-digit characters, such as
// spaces or hyphens, are ignored.
//
// A true result does not imply that the number was ever issued.
func Validate(candidate string) bool {
	digits := pan.Digits(candidate)
	if _, ok := DetectScheme(digits); !ok {
		return false
	}
	return pan.LuhnValid(digits)
}
