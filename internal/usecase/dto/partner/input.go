package partner

import "github.com/47industries/affiliate-service/internal/domain"

type CreatePartnerInput struct {
	Name               string
	Email              string
	Code               string // generated when empty
	ShopCommissionRate float64
	FirstSaleRate      float64
	RecurringRate      float64
	ProBonus           float64
	ProWindowDays      int
	TransferAccount    string
}

type UpdateRatesInput struct {
	PartnerID          string
	ShopCommissionRate float64
	FirstSaleRate      float64
	RecurringRate      float64
	ProBonus           float64
	ProWindowDays      int
	TransferAccount    string
}

type CreateLinkInput struct {
	PartnerID string
	Code      string // generated when empty
	Platform  domain.Platform
	Target    string
}
