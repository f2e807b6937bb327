package payout

import (
	"github.com/47industries/affiliate-service/internal/domain"
)

func (uc *DefaultPayoutUsecase) GetPayoutByID(payoutID string) (*domain.Payout, []*domain.Commission, error) {
	payout, err := uc.payoutRepo.GetPayoutByID(payoutID)
	if err != nil {
		return nil, nil, err
	}
	commissions, err := uc.commissionRepo.GetCommissionsByPayoutID(payout.ID)
	if err != nil {
		return nil, nil, err
	}
	return payout, commissions, nil
}

func (uc *DefaultPayoutUsecase) GetPayouts(filters domain.PayoutFilters, page, limit int64) ([]*domain.Payout, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.payoutRepo.GetPayouts(filters, page, limit)
}
