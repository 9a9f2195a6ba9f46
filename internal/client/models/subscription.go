package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type TierType string

const (
	TierFree      TierType = "free"
	TierPaid      TierType = "paid"
	TierStudent   TierType = "student"
	TierCorporate TierType = "corporate"
)

// Price accepts both JSON numbers and numeric strings; the server emits
// decimals as strings.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

func (p Price) String() string {
	return fmt.Sprintf("$%.2f", float64(p))
}

// Features is a list of tier features. The server sends either a JSON array
// or the same array encoded as a string.
type Features []string

func (f *Features) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = nil
			return nil
		}
		if strings.HasPrefix(s, "[") {
			return f.UnmarshalJSON([]byte(s))
		}
		*f = Features{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*f = list
	return nil
}

type SubscriptionTier struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Type         TierType `json:"type"`
	Price        Price    `json:"price"`
	DurationDays int      `json:"duration_days"`
	Features     Features `json:"features,omitempty"`
}

// Period renders the billing period, "month" for 30 days.
func (t SubscriptionTier) Period() string {
	if t.DurationDays == 30 {
		return "month"
	}
	return fmt.Sprintf("%d days", t.DurationDays)
}

type Subscription struct {
	ID        int64    `json:"id,omitempty"`
	TierID    int64    `json:"tier_id,omitempty"`
	TierName  string   `json:"tier_name"`
	TierType  TierType `json:"tier_type"`
	Price     Price    `json:"price"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	IsActive  bool     `json:"is_active"`
}

// IsTier reports whether s is the subscription to tier t.
func (s *Subscription) IsTier(t SubscriptionTier) bool {
	if s == nil {
		return false
	}
	if s.TierID != 0 && s.TierID == t.ID {
		return true
	}
	return s.TierType == t.Type && s.TierName == t.Name
}

// PaidTiers drops the free tier from tiers.
func PaidTiers(tiers []SubscriptionTier) []SubscriptionTier {
	out := make([]SubscriptionTier, 0, len(tiers))
	for _, t := range tiers {
		if t.Type != TierFree {
			out = append(out, t)
		}
	}
	return out
}
