package pan

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	minLen = 12
	maxLen = 19
)

// Digits drops every byte that is not an ASCII decimal digit.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LuhnValid reports whether a digit string passes the mod-10 check.
// Non-digit input and the empty string are never valid.
func LuhnValid(digits string) bool {
	if digits == "" || !IsDigits(digits) {
		return false
	}
	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

// CheckDigit returns the Luhn check digit that completes body.
func CheckDigit(body string) byte {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return '0' + byte((10-(sum%10))%10)
}

// Generate returns a random Luhn-valid PAN of the given length starting with prefix.
func Generate(prefix string, length int) (string, error) {
	if prefix == "" || !IsDigits(prefix) {
		return "", fmt.Errorf("prefix must contain digits only")
	}
	if length < minLen || length > maxLen {
		return "", fmt.Errorf("pan length must be %d..%d (got %d)", minLen, maxLen, length)
	}
	fill := length - 1 - len(prefix)
	if fill < 0 {
		return "", fmt.Errorf("prefix too long for length %d: %s", length, prefix)
	}
	digits, err := randomDigits(fill)
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	body := prefix + digits
	return body + string(CheckDigit(body)), nil
}

// randomDigits draws digits from crypto/rand. Bytes of 250 and above are
// skipped so every digit is equally likely.
func randomDigits(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n+8)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// LastN returns at most the last n bytes of s.
func LastN(s string, n int) string {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Mask replaces the middle of the PAN digits with '*'. Numbers of 10 digits or
// more show the first 6 and last 4, shorter ones only the last 4, and 4 digits
// or fewer show nothing.
func Mask(pan string) string {
	d := []byte(Digits(pan))
	head, tail := 6, 4
	if len(d) < 10 {
		head = 0
	}
	if len(d) <= 4 {
		tail = 0
	}
	for i := head; i < len(d)-tail; i++ {
		d[i] = '*'
	}
	return string(d)
}

// Fingerprint is a hex HMAC-SHA256 of the PAN digits under pepper. It lets
// callers correlate swipes of one card without keeping the number.
func Fingerprint(pan string, pepper []byte) string {
	h := hmac.New(sha256.New, pepper)
	h.Write([]byte(Digits(pan)))
	return hex.EncodeToString(h.Sum(nil))
}
