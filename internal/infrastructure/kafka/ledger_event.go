package kafka

type CommissionEvent struct {
	CommissionID string  `json:"commission_id"`
	ReferralID   string  `json:"referral_id"`
	PartnerID    string  `json:"partner_id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}

type PayoutEvent struct {
	PayoutID    string  `json:"payout_id"`
	PartnerID   string  `json:"partner_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	TransferRef string  `json:"transfer_ref"`
}
