package models

import (
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

type PartnerModel struct {
	ID                 string               `gorm:"primaryKey;type:uuid"`
	Name               string               `gorm:"not null"`
	Email              string               `gorm:"uniqueIndex;not null"`
	Code               string               `gorm:"uniqueIndex;not null"`
	Status             domain.PartnerStatus `gorm:"index;not null"`
	ShopCommissionRate float64
	FirstSaleRate      float64
	RecurringRate      float64
	ProBonus           float64
	ProWindowDays      int
	TransferAccount    string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (PartnerModel) TableName() string {
	return "partners"
}
