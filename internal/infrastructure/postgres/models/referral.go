package models

import (
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

type ReferralModel struct {
	ID          string           `gorm:"primaryKey;type:uuid"`
	PartnerID   string           `gorm:"type:uuid;index;not null"`
	LinkID      string           `gorm:"type:uuid;index"`
	Platform    domain.Platform  `gorm:"not null;index:idx_referral_event_key,unique"`
	EventType   domain.EventType `gorm:"not null;index:idx_referral_event_key,unique"`
	ExternalRef string           `gorm:"not null;index:idx_referral_event_key,unique"`
	Amount      float64
	SignupAt    time.Time
	ConvertedAt time.Time
	CreatedAt   time.Time `gorm:"index"`
}

func (ReferralModel) TableName() string {
	return "referrals"
}
