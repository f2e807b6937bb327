package domain

import "time"

type EventType string

const (
	EventSignup        EventType = "SIGNUP"
	EventOrder         EventType = "ORDER"
	EventProConversion EventType = "PRO_CONVERSION"
	EventLead          EventType = "LEAD"
)

// Referral is one attributed conversion. The triple
// (Platform, EventType, ExternalRef) is the idempotency key: re-delivery of
// the same upstream event must resolve to the same row.
type Referral struct {
	ID          string
	PartnerID   string
	LinkID      string
	Platform    Platform
	EventType   EventType
	ExternalRef string
	Amount      float64
	SignupAt    time.Time
	ConvertedAt time.Time
	CreatedAt   time.Time
}

type ReferralFilters struct {
	PartnerID string
	Platform  Platform
	EventType EventType
	DateFrom  time.Time
	DateTo    time.Time
}

type ReferralRepository interface {
	CreateReferral(referral *Referral) error
	GetReferralByID(referralID string) (*Referral, error)
	GetReferralByEventKey(platform Platform, eventType EventType, externalRef string) (*Referral, error)
	GetReferrals(filters ReferralFilters, page, limit int64) ([]*Referral, int64, error)
	CountReferralsByPartner(partnerID string) (int64, error)
}
