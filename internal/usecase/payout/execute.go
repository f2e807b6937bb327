package payout

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
)

// ExecutePayout sends the payout through the external transfer rail and, on
// success, marks it PAID and cascades PAID onto its commissions. A transfer
// failure leaves the payout and its commissions exactly as they were; the
// payout id doubles as the transfer idempotency key so retries are safe.
func (uc *DefaultPayoutUsecase) ExecutePayout(payoutID string) (*domain.Payout, error) {
	payout, err := uc.payoutRepo.GetPayoutByID(payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status != domain.PayoutPending {
		return nil, fmt.Errorf("%w: payout is %s", domain.ErrPayoutNotPending, payout.Status)
	}

	partner, err := uc.partnerRepo.GetPartnerByID(payout.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner.TransferAccount == "" {
		return nil, domain.ErrNoTransferDestination
	}

	result, err := uc.transfer.SendTransfer(domain.TransferRequest{
		Destination:    partner.TransferAccount,
		Amount:         payout.Amount,
		Currency:       "USD",
		IdempotencyKey: payout.ID,
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferFailuresTotal.WithLabelValues(partner.ID).Inc()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	return uc.settle(payout, result.Reference, domain.PayoutMethodTransfer)
}

// MarkPaid settles a pending payout without touching the transfer rail, for
// money moved outside the system. The reference is whatever the operator has
// to show for it.
func (uc *DefaultPayoutUsecase) MarkPaid(payoutID, reference string) (*domain.Payout, error) {
	payout, err := uc.payoutRepo.GetPayoutByID(payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status != domain.PayoutPending {
		return nil, fmt.Errorf("%w: payout is %s", domain.ErrPayoutNotPending, payout.Status)
	}
	return uc.settle(payout, reference, domain.PayoutMethodManual)
}

func (uc *DefaultPayoutUsecase) settle(payout *domain.Payout, reference string, method domain.PayoutMethod) (*domain.Payout, error) {
	paidAt := time.Now()
	if err := uc.payoutRepo.MarkPayoutPaid(payout.ID, reference, method, paidAt); err != nil {
		return nil, err
	}
	payout.Status = domain.PayoutPaid
	payout.Method = method
	payout.TransferRef = reference
	payout.PaidAt = &paidAt

	if uc.publisher != nil {
		if err := uc.publisher.PublishPayoutPaid(payout); err != nil {
			slog.Error("failed to publish payout event", "payout_id", payout.ID, "error", err.Error())
		}
	}
	if uc.metrics != nil {
		uc.metrics.PayoutsPaidTotal.WithLabelValues(payout.PartnerID, string(method)).Inc()
		uc.metrics.PayoutsPaidAmountTotal.WithLabelValues(payout.PartnerID, string(method)).Add(payout.Amount)
	}

	return payout, nil
}
