package models

import (
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

type PayoutModel struct {
	ID          string              `gorm:"primaryKey;type:uuid"`
	PartnerID   string              `gorm:"type:uuid;index;not null"`
	Amount      float64             `gorm:"not null"`
	Status      domain.PayoutStatus `gorm:"index;not null"`
	Method      domain.PayoutMethod `gorm:"not null"`
	TransferRef string
	PaidAt      *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (PayoutModel) TableName() string {
	return "payouts"
}
