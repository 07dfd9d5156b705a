package reader

import (
	"time"

	"github.com/alovak/magstripe/internal/expiry"
	"github.com/alovak/magstripe/internal/pan"
	"github.com/alovak/magstripe/magstripe"
	"github.com/google/uuid"
)

// Result is a decoded swipe as presented to callers of the reader.
type Result struct {
	ID          string `json:"id"`
	Account     string `json:"account"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	Name        string `json:"name"`
	Scheme      string `json:"scheme"`
	Fingerprint string `json:"fingerprint,omitempty"`
	// Expired is nil when the expiry on the stripe is not a real YYMM date.
	Expired *bool `json:"expired,omitempty"`
}

type Service struct {
	cfg *Config
	loc *time.Location
	now func() time.Time
}

func NewService(cfg *Config, loc *time.Location) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		cfg: cfg,
		loc: loc,
		now: time.Now,
	}
}

// Decode parses raw and annotates the card. The returned Result always has an
// ID, also when err is not nil, so failures can be correlated.
func (s *Service) Decode(raw string) (Result, error) {
	id := uuid.New().String()

	card, err := magstripe.Parse(raw)
	if err != nil {
		return Result{ID: id}, err
	}

	res := Result{
		ID:          id,
		Account:     card.Account,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		Name:        card.Name,
	}
	if s.cfg.PANPepper != "" {
		res.Fingerprint = pan.Fingerprint(card.Account, []byte(s.cfg.PANPepper))
	}
	if !s.cfg.ShowFullPAN {
		res.Account = pan.Mask(card.Account)
	}
	if scheme, ok := card.Scheme(); ok {
		res.Scheme = scheme.Name
	}
	if expired, err := expiry.IsExpired(card.ExpiryYYMM(), s.now(), s.loc); err == nil {
		res.Expired = &expired
	}
	return res, nil
}
