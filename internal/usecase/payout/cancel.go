package payout

import (
	"fmt"

	"github.com/47industries/affiliate-service/internal/domain"
)

// CancelPayout voids a pending payout and releases its commissions back to
// PENDING for a future batch. Paid payouts are final.
func (uc *DefaultPayoutUsecase) CancelPayout(payoutID string) (*domain.Payout, error) {
	payout, err := uc.payoutRepo.GetPayoutByID(payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status == domain.PayoutPaid {
		return nil, domain.ErrPayoutAlreadyPaid
	}
	if payout.Status != domain.PayoutPending {
		return nil, fmt.Errorf("%w: payout is %s", domain.ErrPayoutNotPending, payout.Status)
	}

	if err := uc.payoutRepo.CancelPayoutAndUnlink(payout.ID); err != nil {
		return nil, err
	}
	payout.Status = domain.PayoutCancelled

	if uc.metrics != nil {
		uc.metrics.PayoutsCancelledTotal.WithLabelValues(payout.PartnerID).Inc()
	}

	return payout, nil
}
