package report

// PartnerSummary is the dashboard aggregate for one partner. Pure read,
// no state transitions.
type PartnerSummary struct {
	PartnerID          string  `json:"partner_id"`
	Clicks             int64   `json:"clicks"`
	Referrals          int64   `json:"referrals"`
	CommissionPending  float64 `json:"commission_pending"`
	CommissionApproved float64 `json:"commission_approved"`
	CommissionPaid     float64 `json:"commission_paid"`
	PayoutPending      float64 `json:"payout_pending"`
	PayoutPaid         float64 `json:"payout_paid"`
}
