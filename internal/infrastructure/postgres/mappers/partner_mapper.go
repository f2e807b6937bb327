package mappers

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainPartner(model *models.PartnerModel) *domain.Partner {
	return &domain.Partner{
		ID:                 model.ID,
		Name:               model.Name,
		Email:              model.Email,
		Code:               model.Code,
		Status:             model.Status,
		ShopCommissionRate: model.ShopCommissionRate,
		FirstSaleRate:      model.FirstSaleRate,
		RecurringRate:      model.RecurringRate,
		ProBonus:           model.ProBonus,
		ProWindowDays:      model.ProWindowDays,
		TransferAccount:    model.TransferAccount,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMPartner(partner *domain.Partner) *models.PartnerModel {
	return &models.PartnerModel{
		ID:                 partner.ID,
		Name:               partner.Name,
		Email:              partner.Email,
		Code:               partner.Code,
		Status:             partner.Status,
		ShopCommissionRate: partner.ShopCommissionRate,
		FirstSaleRate:      partner.FirstSaleRate,
		RecurringRate:      partner.RecurringRate,
		ProBonus:           partner.ProBonus,
		ProWindowDays:      partner.ProWindowDays,
		TransferAccount:    partner.TransferAccount,
		CreatedAt:          partner.CreatedAt,
		UpdatedAt:          partner.UpdatedAt,
	}
}
