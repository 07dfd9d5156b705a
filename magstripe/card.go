package magstripe

import "github.com/alovak/magstripe/internal/pan"

// Track1 holds the fields decoded from an ISO 7813 Track 1 (format B) payload.
type Track1 struct {
	Account     string `json:"account"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	// Name is "FIRST LAST", reversed from the on-stripe LAST/FIRST order.
	Name string `json:"name"`
}

// Track2 holds the fields decoded from an ISO 7813 Track 2 payload.
type Track2 struct {
	Account     string `json:"account"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
}

// Card is a swipe whose two tracks agree on account and expiry.
// Its fields are taken verbatim from Track 1.
type Card Track1

// ExpiryYYMM returns the expiry in the order it is encoded on the stripe.
func (c Card) ExpiryYYMM() string {
	return c.ExpiryYear + c.ExpiryMonth
}

// Scheme returns the issuer scheme of the account number.
func (c Card) Scheme() (Scheme, bool) {
	return DetectScheme(pan.Digits(c.Account))
}

func (t Track1) agrees(t2 Track2) bool {
	return t.Account == t2.Account &&
		t.ExpiryMonth == t2.ExpiryMonth &&
		t.ExpiryYear == t2.ExpiryYear
}
