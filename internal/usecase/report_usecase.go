package usecase

import (
	"github.com/47industries/affiliate-service/internal/domain"
	reportdto "github.com/47industries/affiliate-service/internal/usecase/dto/report"
)

type ReportUsecase interface {
	GetPartnerSummary(partnerID string) (*reportdto.PartnerSummary, error)
}

// DefaultReportUsecase assembles read-only dashboard aggregates out of the
// ledger. Sums come straight from the database, not from re-deriving rates.
type DefaultReportUsecase struct {
	partnerRepo    domain.PartnerRepository
	clickRepo      domain.ClickRepository
	referralRepo   domain.ReferralRepository
	commissionRepo domain.CommissionRepository
	payoutRepo     domain.PayoutRepository
}

func NewDefaultReportUsecase(
	partnerRepo domain.PartnerRepository,
	clickRepo domain.ClickRepository,
	referralRepo domain.ReferralRepository,
	commissionRepo domain.CommissionRepository,
	payoutRepo domain.PayoutRepository,
) *DefaultReportUsecase {
	return &DefaultReportUsecase{
		partnerRepo:    partnerRepo,
		clickRepo:      clickRepo,
		referralRepo:   referralRepo,
		commissionRepo: commissionRepo,
		payoutRepo:     payoutRepo,
	}
}

func (uc *DefaultReportUsecase) GetPartnerSummary(partnerID string) (*reportdto.PartnerSummary, error) {
	partner, err := uc.partnerRepo.GetPartnerByID(partnerID)
	if err != nil {
		return nil, err
	}

	summary := reportdto.PartnerSummary{PartnerID: partner.ID}

	if summary.Clicks, err = uc.clickRepo.CountClicksByPartner(partner.ID); err != nil {
		return nil, err
	}
	if summary.Referrals, err = uc.referralRepo.CountReferralsByPartner(partner.ID); err != nil {
		return nil, err
	}

	commissionSums := []struct {
		status domain.CommissionStatus
		dest   *float64
	}{
		{domain.CommissionPending, &summary.CommissionPending},
		{domain.CommissionApproved, &summary.CommissionApproved},
		{domain.CommissionPaid, &summary.CommissionPaid},
	}
	for _, entry := range commissionSums {
		sum, err := uc.commissionRepo.SumAmountByPartnerStatus(partner.ID, entry.status)
		if err != nil {
			return nil, err
		}
		*entry.dest = domain.RoundMoney(sum)
	}

	payoutSums := []struct {
		status domain.PayoutStatus
		dest   *float64
	}{
		{domain.PayoutPending, &summary.PayoutPending},
		{domain.PayoutPaid, &summary.PayoutPaid},
	}
	for _, entry := range payoutSums {
		sum, err := uc.payoutRepo.SumAmountByPartnerStatus(partner.ID, entry.status)
		if err != nil {
			return nil, err
		}
		*entry.dest = domain.RoundMoney(sum)
	}

	return &summary, nil
}
