package conversion

import "github.com/47industries/affiliate-service/internal/domain"

// ConversionOutput carries the referral plus any commissions it produced.
// Duplicate is set when the event was already processed; the payload is then
// the original outcome, returned as an idempotent success.
type ConversionOutput struct {
	Referral    *domain.Referral
	Commissions []*domain.Commission
	Duplicate   bool
}
