package mappers

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainReferral(model *models.ReferralModel) *domain.Referral {
	return &domain.Referral{
		ID:          model.ID,
		PartnerID:   model.PartnerID,
		LinkID:      model.LinkID,
		Platform:    model.Platform,
		EventType:   model.EventType,
		ExternalRef: model.ExternalRef,
		Amount:      model.Amount,
		SignupAt:    model.SignupAt,
		ConvertedAt: model.ConvertedAt,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMReferral(referral *domain.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID:          referral.ID,
		PartnerID:   referral.PartnerID,
		LinkID:      referral.LinkID,
		Platform:    referral.Platform,
		EventType:   referral.EventType,
		ExternalRef: referral.ExternalRef,
		Amount:      referral.Amount,
		SignupAt:    referral.SignupAt,
		ConvertedAt: referral.ConvertedAt,
		CreatedAt:   referral.CreatedAt,
	}
}
