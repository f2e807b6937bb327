package mappers

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainCommission(model *models.CommissionModel) *domain.Commission {
	return &domain.Commission{
		ID:          model.ID,
		ReferralID:  model.ReferralID,
		PartnerID:   model.PartnerID,
		Type:        model.Type,
		Amount:      model.Amount,
		RateApplied: model.RateApplied,
		Status:      model.Status,
		PayoutID:    model.PayoutID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMCommission(commission *domain.Commission) *models.CommissionModel {
	return &models.CommissionModel{
		ID:          commission.ID,
		ReferralID:  commission.ReferralID,
		PartnerID:   commission.PartnerID,
		Type:        commission.Type,
		Amount:      commission.Amount,
		RateApplied: commission.RateApplied,
		Status:      commission.Status,
		PayoutID:    commission.PayoutID,
		CreatedAt:   commission.CreatedAt,
		UpdatedAt:   commission.UpdatedAt,
	}
}
