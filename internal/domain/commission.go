package domain

import "time"

type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "PENDING"
	CommissionApproved CommissionStatus = "APPROVED"
	CommissionPaid     CommissionStatus = "PAID"
)

type CommissionType string

const (
	CommissionShopOrder     CommissionType = "SHOP_ORDER"
	CommissionProConversion CommissionType = "PRO_CONVERSION"
	CommissionLeadFirstSale CommissionType = "LEAD_FIRST_SALE"
	CommissionLeadRecurring CommissionType = "LEAD_RECURRING"
)

// Commission is one ledger entry, owned by exactly one referral and one
// partner. RateApplied is the partner rate snapshotted at event time; the
// amount is never re-derived from live partner configuration.
type Commission struct {
	ID          string
	ReferralID  string
	PartnerID   string
	Type        CommissionType
	Amount      float64
	RateApplied float64
	Status      CommissionStatus
	PayoutID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Locked reports whether the commission is linked to a payout. A locked
// commission can never have its amount changed or be deleted.
func (c *Commission) Locked() bool {
	return c.PayoutID != nil && *c.PayoutID != ""
}

// commissionTransitions is the closed transition table for direct status
// writes. PAID is absent on purpose: it is only reachable through the
// payout cascade.
var commissionTransitions = map[CommissionStatus][]CommissionStatus{
	CommissionPending:  {CommissionApproved},
	CommissionApproved: {},
	CommissionPaid:     {},
}

func CanTransitionCommission(from, to CommissionStatus) bool {
	for _, allowed := range commissionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type CommissionFilters struct {
	PartnerID  string
	ReferralID string
	Status     CommissionStatus
	Type       CommissionType
}

type CommissionRepository interface {
	CreateCommission(commission *Commission) error
	GetCommissionByID(commissionID string) (*Commission, error)
	GetCommissionsByReferralID(referralID string) ([]*Commission, error)
	GetCommissions(filters CommissionFilters, page, limit int64) ([]*Commission, int64, error)
	GetEligibleForPayout(partnerID string) ([]*Commission, error)
	GetCommissionsByPayoutID(payoutID string) ([]*Commission, error)
	UpdateCommissionStatus(commissionID string, status CommissionStatus) error
	UpdateCommissionAmount(commissionID string, amount float64) error
	DeleteCommission(commissionID string) error
	SumAmountByPartnerStatus(partnerID string, status CommissionStatus) (float64, error)
}
