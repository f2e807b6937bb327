package mappers

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainLink(model *models.AffiliateLinkModel) *domain.AffiliateLink {
	return &domain.AffiliateLink{
		ID:         model.ID,
		PartnerID:  model.PartnerID,
		Code:       model.Code,
		Platform:   model.Platform,
		Target:     model.Target,
		Active:     model.Active,
		ClickCount: model.ClickCount,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMLink(link *domain.AffiliateLink) *models.AffiliateLinkModel {
	return &models.AffiliateLinkModel{
		ID:         link.ID,
		PartnerID:  link.PartnerID,
		Code:       link.Code,
		Platform:   link.Platform,
		Target:     link.Target,
		Active:     link.Active,
		ClickCount: link.ClickCount,
		CreatedAt:  link.CreatedAt,
		UpdatedAt:  link.UpdatedAt,
	}
}

func ToDomainClick(model *models.ClickModel) *domain.Click {
	return &domain.Click{
		ID:        model.ID,
		LinkID:    model.LinkID,
		PartnerID: model.PartnerID,
		SessionID: model.SessionID,
		Referrer:  model.Referrer,
		UserAgent: model.UserAgent,
		IP:        model.IP,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMClick(click *domain.Click) *models.ClickModel {
	return &models.ClickModel{
		ID:        click.ID,
		LinkID:    click.LinkID,
		PartnerID: click.PartnerID,
		SessionID: click.SessionID,
		Referrer:  click.Referrer,
		UserAgent: click.UserAgent,
		IP:        click.IP,
		CreatedAt: click.CreatedAt,
	}
}
