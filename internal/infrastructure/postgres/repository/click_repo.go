package repository

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultClickRepository struct {
	DB *gorm.DB
}

func NewDefaultClickRepository(db *gorm.DB) *DefaultClickRepository {
	return &DefaultClickRepository{DB: db}
}

func (r *DefaultClickRepository) CreateClick(click *domain.Click) error {
	clickModel := mappers.ToGORMClick(click)
	if err := r.DB.Create(clickModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultClickRepository) CountClicksByPartner(partnerID string) (int64, error) {
	var total int64
	if err := r.DB.Model(&models.ClickModel{}).
		Where("partner_id = ?", partnerID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
