package conversion

import (
	"github.com/47industries/affiliate-service/internal/domain"
	conversiondto "github.com/47industries/affiliate-service/internal/usecase/dto/conversion"
)

func (uc *DefaultConversionUsecase) GetReferralByID(referralID string) (*conversiondto.ConversionOutput, error) {
	referral, err := uc.referralRepo.GetReferralByID(referralID)
	if err != nil {
		return nil, err
	}
	commissions, err := uc.commissionRepo.GetCommissionsByReferralID(referral.ID)
	if err != nil {
		return nil, err
	}
	return &conversiondto.ConversionOutput{
		Referral:    referral,
		Commissions: commissions,
	}, nil
}

func (uc *DefaultConversionUsecase) GetReferrals(filters domain.ReferralFilters, page, limit int64) ([]*domain.Referral, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.referralRepo.GetReferrals(filters, page, limit)
}
