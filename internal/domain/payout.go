package domain

import "time"

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "PENDING"
	PayoutPaid      PayoutStatus = "PAID"
	PayoutCancelled PayoutStatus = "CANCELLED"
)

type PayoutMethod string

const (
	PayoutMethodTransfer PayoutMethod = "TRANSFER"
	PayoutMethodManual   PayoutMethod = "MANUAL"
)

// Payout aggregates a partner's commissions into one payable unit. Amount is
// the sum of the linked commissions frozen at creation time, never recomputed.
type Payout struct {
	ID          string
	PartnerID   string
	Amount      float64
	Status      PayoutStatus
	Method      PayoutMethod
	TransferRef string
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PayoutFilters struct {
	PartnerID string
	Status    PayoutStatus
}

// PayoutTxRepository is the transactional unit used by payout mutations.
// Linking and unlinking commissions must commit together with the payout row.
type PayoutTxRepository interface {
	CreatePayoutWithCommissions(payout *Payout, commissionIDs []string) error
	MarkPayoutPaid(payoutID, transferRef string, method PayoutMethod, paidAt time.Time) error
	CancelPayoutAndUnlink(payoutID string) error
}

type PayoutRepository interface {
	PayoutTxRepository
	GetPayoutByID(payoutID string) (*Payout, error)
	GetPayouts(filters PayoutFilters, page, limit int64) ([]*Payout, int64, error)
	SumAmountByPartnerStatus(partnerID string, status PayoutStatus) (float64, error)
}
