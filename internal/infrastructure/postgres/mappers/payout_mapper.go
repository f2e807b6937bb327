package mappers

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:          model.ID,
		PartnerID:   model.PartnerID,
		Amount:      model.Amount,
		Status:      model.Status,
		Method:      model.Method,
		TransferRef: model.TransferRef,
		PaidAt:      model.PaidAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMPayout(payout *domain.Payout) *models.PayoutModel {
	return &models.PayoutModel{
		ID:          payout.ID,
		PartnerID:   payout.PartnerID,
		Amount:      payout.Amount,
		Status:      payout.Status,
		Method:      payout.Method,
		TransferRef: payout.TransferRef,
		PaidAt:      payout.PaidAt,
		CreatedAt:   payout.CreatedAt,
		UpdatedAt:   payout.UpdatedAt,
	}
}
