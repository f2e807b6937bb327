package repository

import (
	"errors"
	"fmt"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

// CreateReferral relies on the unique index over
// (platform, event_type, external_ref): a concurrent duplicate insert comes
// back as ErrDuplicateEvent, never as a generic failure.
func (r *DefaultReferralRepository) CreateReferral(referral *domain.Referral) error {
	referralModel := mappers.ToGORMReferral(referral)
	if err := r.DB.Create(referralModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEvent
		}
		return err
	}
	return nil
}

func (r *DefaultReferralRepository) GetReferralByID(referralID string) (*domain.Referral, error) {
	var referralModel models.ReferralModel
	if err := r.DB.First(&referralModel, "id = ?", referralID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReferral(&referralModel), nil
}

func (r *DefaultReferralRepository) GetReferralByEventKey(platform domain.Platform, eventType domain.EventType, externalRef string) (*domain.Referral, error) {
	var referralModel models.ReferralModel
	if err := r.DB.
		Where("platform = ? AND event_type = ? AND external_ref = ?", platform, eventType, externalRef).
		First(&referralModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReferral(&referralModel), nil
}

func (r *DefaultReferralRepository) GetReferrals(filters domain.ReferralFilters, page, limit int64) ([]*domain.Referral, int64, error) {
	query := r.DB.Model(&models.ReferralModel{})

	if filters.PartnerID != "" {
		query = query.Where("partner_id = ?", filters.PartnerID)
	}
	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}
	if filters.EventType != "" {
		query = query.Where("event_type = ?", filters.EventType)
	}
	if !filters.DateFrom.IsZero() {
		query = query.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		query = query.Where("created_at <= ?", filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count referrals: %w", err)
	}

	offset := (page - 1) * limit
	var referralModels []models.ReferralModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&referralModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find referrals: %w", err)
	}

	referrals := make([]*domain.Referral, len(referralModels))
	for i, referralModel := range referralModels {
		referrals[i] = mappers.ToDomainReferral(&referralModel)
	}

	return referrals, total, nil
}

func (r *DefaultReferralRepository) CountReferralsByPartner(partnerID string) (int64, error) {
	var total int64
	if err := r.DB.Model(&models.ReferralModel{}).
		Where("partner_id = ?", partnerID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
