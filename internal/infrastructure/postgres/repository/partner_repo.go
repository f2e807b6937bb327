package repository

import (
	"errors"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPartnerRepository struct {
	DB *gorm.DB
}

func NewDefaultPartnerRepository(db *gorm.DB) *DefaultPartnerRepository {
	return &DefaultPartnerRepository{DB: db}
}

func (r *DefaultPartnerRepository) CreatePartner(partner *domain.Partner) error {
	partnerModel := mappers.ToGORMPartner(partner)
	if err := r.DB.Create(partnerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCodeTaken
		}
		return err
	}
	return nil
}

func (r *DefaultPartnerRepository) GetPartnerByID(partnerID string) (*domain.Partner, error) {
	var partnerModel models.PartnerModel
	if err := r.DB.First(&partnerModel, "id = ?", partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPartner(&partnerModel), nil
}

func (r *DefaultPartnerRepository) GetActivePartnerByCode(code string) (*domain.Partner, error) {
	var partnerModel models.PartnerModel
	if err := r.DB.
		Where("code = ? AND status = ?", code, domain.PartnerActive).
		First(&partnerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPartner(&partnerModel), nil
}

func (r *DefaultPartnerRepository) UpdatePartner(partner *domain.Partner) error {
	partnerModel := mappers.ToGORMPartner(partner)
	result := r.DB.Model(&models.PartnerModel{}).
		Where("id = ?", partner.ID).
		Updates(map[string]interface{}{
			"name":                 partnerModel.Name,
			"email":                partnerModel.Email,
			"shop_commission_rate": partnerModel.ShopCommissionRate,
			"first_sale_rate":      partnerModel.FirstSaleRate,
			"recurring_rate":       partnerModel.RecurringRate,
			"pro_bonus":            partnerModel.ProBonus,
			"pro_window_days":      partnerModel.ProWindowDays,
			"transfer_account":     partnerModel.TransferAccount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultPartnerRepository) UpdatePartnerStatus(partnerID string, status domain.PartnerStatus) error {
	result := r.DB.Model(&models.PartnerModel{}).
		Where("id = ?", partnerID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
