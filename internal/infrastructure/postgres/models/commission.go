package models

import (
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

type CommissionModel struct {
	ID          string                  `gorm:"primaryKey;type:uuid"`
	ReferralID  string                  `gorm:"type:uuid;index;not null"`
	Referral    ReferralModel           `gorm:"foreignKey:ReferralID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	PartnerID   string                  `gorm:"type:uuid;index;not null"`
	Type        domain.CommissionType   `gorm:"not null"`
	Amount      float64                 `gorm:"not null"`
	RateApplied float64                 `gorm:"not null"`
	Status      domain.CommissionStatus `gorm:"index:idx_commission_status_payout;not null"`
	PayoutID    *string                 `gorm:"type:uuid;index:idx_commission_status_payout"`
	CreatedAt   time.Time               `gorm:"index"`
	UpdatedAt   time.Time
}

func (CommissionModel) TableName() string {
	return "commissions"
}
