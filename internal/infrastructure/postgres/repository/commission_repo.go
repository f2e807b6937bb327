package repository

import (
	"errors"
	"fmt"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCommissionRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionRepository(db *gorm.DB) *DefaultCommissionRepository {
	return &DefaultCommissionRepository{DB: db}
}

func (r *DefaultCommissionRepository) CreateCommission(commission *domain.Commission) error {
	commissionModel := mappers.ToGORMCommission(commission)
	if err := r.DB.Create(commissionModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCommissionRepository) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	var commissionModel models.CommissionModel
	if err := r.DB.First(&commissionModel, "id = ?", commissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCommission(&commissionModel), nil
}

func (r *DefaultCommissionRepository) GetCommissionsByReferralID(referralID string) ([]*domain.Commission, error) {
	var commissionModels []models.CommissionModel
	if err := r.DB.
		Where("referral_id = ?", referralID).
		Order("created_at ASC").
		Find(&commissionModels).Error; err != nil {
		return nil, err
	}
	return toDomainCommissions(commissionModels), nil
}

func (r *DefaultCommissionRepository) GetCommissions(filters domain.CommissionFilters, page, limit int64) ([]*domain.Commission, int64, error) {
	query := r.DB.Model(&models.CommissionModel{})

	if filters.PartnerID != "" {
		query = query.Where("partner_id = ?", filters.PartnerID)
	}
	if filters.ReferralID != "" {
		query = query.Where("referral_id = ?", filters.ReferralID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count commissions: %w", err)
	}

	offset := (page - 1) * limit
	var commissionModels []models.CommissionModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&commissionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find commissions: %w", err)
	}

	return toDomainCommissions(commissionModels), total, nil
}

func (r *DefaultCommissionRepository) GetEligibleForPayout(partnerID string) ([]*domain.Commission, error) {
	var commissionModels []models.CommissionModel
	if err := r.DB.
		Where("partner_id = ?", partnerID).
		Where("status IN (?)", []domain.CommissionStatus{domain.CommissionPending, domain.CommissionApproved}).
		Where("payout_id IS NULL").
		Order("created_at ASC").
		Find(&commissionModels).Error; err != nil {
		return nil, err
	}
	return toDomainCommissions(commissionModels), nil
}

func (r *DefaultCommissionRepository) GetCommissionsByPayoutID(payoutID string) ([]*domain.Commission, error) {
	var commissionModels []models.CommissionModel
	if err := r.DB.
		Where("payout_id = ?", payoutID).
		Order("created_at ASC").
		Find(&commissionModels).Error; err != nil {
		return nil, err
	}
	return toDomainCommissions(commissionModels), nil
}

func (r *DefaultCommissionRepository) UpdateCommissionStatus(commissionID string, status domain.CommissionStatus) error {
	result := r.DB.Model(&models.CommissionModel{}).
		Where("id = ?", commissionID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCommissionAmount refuses to touch payout-linked rows even if the
// usecase guard was bypassed.
func (r *DefaultCommissionRepository) UpdateCommissionAmount(commissionID string, amount float64) error {
	result := r.DB.Model(&models.CommissionModel{}).
		Where("id = ? AND payout_id IS NULL", commissionID).
		Update("amount", amount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommissionLocked
	}
	return nil
}

func (r *DefaultCommissionRepository) DeleteCommission(commissionID string) error {
	result := r.DB.
		Where("id = ? AND payout_id IS NULL", commissionID).
		Delete(&models.CommissionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommissionLocked
	}
	return nil
}

func (r *DefaultCommissionRepository) SumAmountByPartnerStatus(partnerID string, status domain.CommissionStatus) (float64, error) {
	var sum float64
	if err := r.DB.Model(&models.CommissionModel{}).
		Where("partner_id = ? AND status = ?", partnerID, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

func toDomainCommissions(commissionModels []models.CommissionModel) []*domain.Commission {
	commissions := make([]*domain.Commission, len(commissionModels))
	for i, commissionModel := range commissionModels {
		commissions[i] = mappers.ToDomainCommission(&commissionModel)
	}
	return commissions
}
