package conversion

import (
	"fmt"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	conversiondto "github.com/47industries/affiliate-service/internal/usecase/dto/conversion"
	"github.com/google/uuid"
)

// RecordRecurring creates one LEAD_RECURRING ledger entry for a billing
// cycle of a closed lead. Each cycle gets its own PENDING row tied to the
// same referral; the recurring rate is snapshotted per cycle.
func (uc *DefaultConversionUsecase) RecordRecurring(input *conversiondto.RecordRecurringInput) (*domain.Commission, error) {
	if input.MonthlyAmount <= 0 {
		return nil, fmt.Errorf("%w: monthly amount must be positive", domain.ErrValidation)
	}

	referral, err := uc.referralRepo.GetReferralByID(input.ReferralID)
	if err != nil {
		return nil, err
	}
	if referral.EventType != domain.EventLead {
		return nil, fmt.Errorf("%w: recurring commissions only apply to lead referrals", domain.ErrValidation)
	}

	partner, err := uc.partnerRepo.GetPartnerByID(referral.PartnerID)
	if err != nil {
		return nil, err
	}

	amount := domain.PercentOf(input.MonthlyAmount, partner.RecurringRate)
	if amount <= 0 {
		uc.countNoCommission(referral, "zero_rate")
		return nil, fmt.Errorf("%w: recurring rate yields no commission", domain.ErrValidation)
	}

	commission := domain.Commission{
		ID:          uuid.New().String(),
		ReferralID:  referral.ID,
		PartnerID:   referral.PartnerID,
		Type:        domain.CommissionLeadRecurring,
		Amount:      amount,
		RateApplied: partner.RecurringRate,
		Status:      domain.CommissionPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.commissionRepo.CreateCommission(&commission); err != nil {
		return nil, err
	}
	uc.notifyCommissionCreated(&commission)

	return &commission, nil
}
