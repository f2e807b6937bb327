package conversion

import (
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

type RecordConversionInput struct {
	Platform    domain.Platform
	EventType   domain.EventType
	ExternalRef string
	// Code is the affiliate code from the event payload or the attribution
	// cookie value, whichever the caller has.
	Code        string
	Amount      float64 // order total or contract value, 0 for signups
	SignupAt    time.Time
	ConvertedAt time.Time
}

type RecordRecurringInput struct {
	ReferralID    string
	MonthlyAmount float64
}
