package payout

import (
	"fmt"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	payoutdto "github.com/47industries/affiliate-service/internal/usecase/dto/payout"
	"github.com/google/uuid"
)

// CreatePayout freezes the selected commissions into a PENDING payout. The
// payout amount is the rounded sum of the linked commissions at creation
// time; later rate edits never touch it.
func (uc *DefaultPayoutUsecase) CreatePayout(input *payoutdto.CreatePayoutInput) (*domain.Payout, error) {
	if input.PartnerID == "" {
		return nil, fmt.Errorf("%w: partner id is required", domain.ErrValidation)
	}
	partner, err := uc.partnerRepo.GetPartnerByID(input.PartnerID)
	if err != nil {
		return nil, err
	}

	commissions, err := uc.selectCommissions(partner.ID, input.CommissionIDs)
	if err != nil {
		return nil, err
	}
	if len(commissions) == 0 {
		return nil, domain.ErrNoEligibleCommissions
	}

	var total float64
	commissionIDs := make([]string, 0, len(commissions))
	for _, commission := range commissions {
		total += commission.Amount
		commissionIDs = append(commissionIDs, commission.ID)
	}

	payout := domain.Payout{
		ID:        uuid.New().String(),
		PartnerID: partner.ID,
		Amount:    domain.RoundMoney(total),
		Status:    domain.PayoutPending,
		Method:    domain.PayoutMethodTransfer,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.payoutRepo.CreatePayoutWithCommissions(&payout, commissionIDs); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PayoutsCreatedTotal.WithLabelValues(partner.ID).Inc()
	}

	return &payout, nil
}

// selectCommissions resolves the batch: explicit IDs are validated one by
// one, no IDs means every unlinked PENDING or APPROVED commission of the
// partner.
func (uc *DefaultPayoutUsecase) selectCommissions(partnerID string, commissionIDs []string) ([]*domain.Commission, error) {
	if len(commissionIDs) == 0 {
		return uc.commissionRepo.GetEligibleForPayout(partnerID)
	}

	commissions := make([]*domain.Commission, 0, len(commissionIDs))
	for _, commissionID := range commissionIDs {
		commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
		if err != nil {
			return nil, err
		}
		if commission.PartnerID != partnerID {
			return nil, fmt.Errorf("%w: commission %s belongs to another partner", domain.ErrValidation, commissionID)
		}
		if commission.Locked() {
			return nil, fmt.Errorf("%w: commission %s is already in a payout", domain.ErrCommissionLocked, commissionID)
		}
		if commission.Status != domain.CommissionPending && commission.Status != domain.CommissionApproved {
			return nil, fmt.Errorf("%w: commission %s is %s", domain.ErrInvalidTransition, commissionID, commission.Status)
		}
		commissions = append(commissions, commission)
	}
	return commissions, nil
}
