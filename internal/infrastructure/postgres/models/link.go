package models

import (
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

type AffiliateLinkModel struct {
	ID         string          `gorm:"primaryKey;type:uuid"`
	PartnerID  string          `gorm:"type:uuid;index;not null"`
	Partner    PartnerModel    `gorm:"foreignKey:PartnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Code       string          `gorm:"uniqueIndex;not null"`
	Platform   domain.Platform `gorm:"index;not null"`
	Target     string
	Active     bool  `gorm:"index"`
	ClickCount int64 `gorm:"default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AffiliateLinkModel) TableName() string {
	return "affiliate_links"
}

type ClickModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	LinkID    string `gorm:"type:uuid;index;not null"`
	PartnerID string `gorm:"type:uuid;index;not null"`
	SessionID string `gorm:"index"`
	Referrer  string
	UserAgent string
	IP        string
	CreatedAt time.Time `gorm:"index"`
}

func (ClickModel) TableName() string {
	return "clicks"
}
