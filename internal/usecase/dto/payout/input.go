package payout

// CreatePayoutInput batches a partner's commissions into one payout. An empty
// CommissionIDs slice means "everything currently eligible".
type CreatePayoutInput struct {
	PartnerID     string
	CommissionIDs []string
}
