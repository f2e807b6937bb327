package repository

import (
	"errors"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultLinkRepository struct {
	DB *gorm.DB
}

func NewDefaultLinkRepository(db *gorm.DB) *DefaultLinkRepository {
	return &DefaultLinkRepository{DB: db}
}

func (r *DefaultLinkRepository) CreateLink(link *domain.AffiliateLink) error {
	linkModel := mappers.ToGORMLink(link)
	if err := r.DB.Create(linkModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCodeTaken
		}
		return err
	}
	return nil
}

func (r *DefaultLinkRepository) GetLinkByID(linkID string) (*domain.AffiliateLink, error) {
	var linkModel models.AffiliateLinkModel
	if err := r.DB.First(&linkModel, "id = ?", linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainLink(&linkModel), nil
}

func (r *DefaultLinkRepository) GetActiveLinkByCode(code string) (*domain.AffiliateLink, error) {
	var linkModel models.AffiliateLinkModel
	if err := r.DB.
		Where("code = ? AND active = ?", code, true).
		First(&linkModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainLink(&linkModel), nil
}

func (r *DefaultLinkRepository) GetLatestActiveLinkByPartner(partnerID string, platform domain.Platform) (*domain.AffiliateLink, error) {
	var linkModel models.AffiliateLinkModel
	if err := r.DB.
		Where("partner_id = ? AND platform = ? AND active = ?", partnerID, platform, true).
		Order("created_at DESC").
		First(&linkModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainLink(&linkModel), nil
}

func (r *DefaultLinkRepository) GetLinksByPartnerID(partnerID string) ([]*domain.AffiliateLink, error) {
	var linkModels []models.AffiliateLinkModel
	if err := r.DB.
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]*domain.AffiliateLink, len(linkModels))
	for i, linkModel := range linkModels {
		links[i] = mappers.ToDomainLink(&linkModel)
	}

	return links, nil
}

func (r *DefaultLinkRepository) UpdateLinkActive(linkID string, active bool) error {
	result := r.DB.Model(&models.AffiliateLinkModel{}).
		Where("id = ?", linkID).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultLinkRepository) IncrementClickCount(linkID string) error {
	return r.DB.Model(&models.AffiliateLinkModel{}).
		Where("id = ?", linkID).
		Update("click_count", gorm.Expr("click_count + 1")).Error
}
