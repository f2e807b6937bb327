package domain

import "time"

type PartnerStatus string

const (
	PartnerActive   PartnerStatus = "ACTIVE"
	PartnerInactive PartnerStatus = "INACTIVE"
)

// Partner rate fields are configuration only: every commission snapshots the
// rate it was computed with, so editing a partner never rewrites history.
type Partner struct {
	ID                 string
	Name               string
	Email              string
	Code               string // bare partner-level affiliate code
	Status             PartnerStatus
	ShopCommissionRate float64 // percent of order total
	FirstSaleRate      float64 // percent of contract value
	RecurringRate      float64 // percent of monthly recurring
	ProBonus           float64 // flat bonus per pro conversion
	ProWindowDays      int     // conversion window after signup, calendar days
	TransferAccount    string  // external rail destination, empty = not configured
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type PartnerRepository interface {
	CreatePartner(partner *Partner) error
	GetPartnerByID(partnerID string) (*Partner, error)
	GetActivePartnerByCode(code string) (*Partner, error)
	UpdatePartner(partner *Partner) error
	UpdatePartnerStatus(partnerID string, status PartnerStatus) error
}
