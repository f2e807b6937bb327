package conversion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	conversiondto "github.com/47industries/affiliate-service/internal/usecase/dto/conversion"
	"github.com/google/uuid"
)

// RecordConversion applies the idempotency key (platform, event type,
// external reference) before anything is written: a re-delivered event
// returns the original referral and commissions as a success.
func (uc *DefaultConversionUsecase) RecordConversion(input *conversiondto.RecordConversionInput) (*conversiondto.ConversionOutput, error) {
	if err := validateConversionInput(input); err != nil {
		return nil, err
	}

	existing, err := uc.referralRepo.GetReferralByEventKey(input.Platform, input.EventType, input.ExternalRef)
	if err == nil {
		return uc.duplicateOutput(existing)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	attribution, err := uc.attribution.ResolveAttribution(input.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: no active partner for code %q", domain.ErrNotFound, input.Code)
	}

	partner, err := uc.partnerRepo.GetPartnerByID(attribution.PartnerID)
	if err != nil {
		return nil, err
	}

	convertedAt := input.ConvertedAt
	if convertedAt.IsZero() {
		convertedAt = time.Now()
	}

	referral := domain.Referral{
		ID:          uuid.New().String(),
		PartnerID:   partner.ID,
		LinkID:      attribution.LinkID,
		Platform:    input.Platform,
		EventType:   input.EventType,
		ExternalRef: input.ExternalRef,
		Amount:      input.Amount,
		SignupAt:    input.SignupAt,
		ConvertedAt: convertedAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.referralRepo.CreateReferral(&referral); err != nil {
		// Lost the race against a concurrent delivery of the same event:
		// the other request's outcome is the canonical one.
		if errors.Is(err, domain.ErrDuplicateEvent) {
			winner, lookupErr := uc.referralRepo.GetReferralByEventKey(input.Platform, input.EventType, input.ExternalRef)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return uc.duplicateOutput(winner)
		}
		return nil, err
	}

	commission := uc.computeCommission(&referral, partner)

	var commissions []*domain.Commission
	if commission != nil {
		if err := uc.commissionRepo.CreateCommission(commission); err != nil {
			return nil, err
		}
		commissions = append(commissions, commission)
		uc.notifyCommissionCreated(commission)
	}

	if uc.metrics != nil {
		uc.metrics.ConversionsRecordedTotal.WithLabelValues(string(input.Platform), string(input.EventType)).Inc()
	}

	return &conversiondto.ConversionOutput{
		Referral:    &referral,
		Commissions: commissions,
	}, nil
}

// computeCommission returns nil when the event earns nothing: signups,
// pro conversions outside the window, and zero rates all record the
// referral for reporting without a ledger entry.
func (uc *DefaultConversionUsecase) computeCommission(referral *domain.Referral, partner *domain.Partner) *domain.Commission {
	switch referral.EventType {
	case domain.EventOrder:
		amount := domain.PercentOf(referral.Amount, partner.ShopCommissionRate)
		if amount <= 0 {
			uc.countNoCommission(referral, "zero_rate")
			return nil
		}
		return uc.newCommission(referral, domain.CommissionShopOrder, amount, partner.ShopCommissionRate)

	case domain.EventProConversion:
		if !WithinConversionWindow(referral.SignupAt, referral.ConvertedAt, partner.ProWindowDays) {
			uc.countNoCommission(referral, "window_missed")
			return nil
		}
		if partner.ProBonus <= 0 {
			uc.countNoCommission(referral, "zero_rate")
			return nil
		}
		return uc.newCommission(referral, domain.CommissionProConversion, domain.RoundMoney(partner.ProBonus), partner.ProBonus)

	case domain.EventLead:
		amount := domain.PercentOf(referral.Amount, partner.FirstSaleRate)
		if amount <= 0 {
			uc.countNoCommission(referral, "zero_rate")
			return nil
		}
		return uc.newCommission(referral, domain.CommissionLeadFirstSale, amount, partner.FirstSaleRate)

	default:
		// SIGNUP carries no money by itself.
		return nil
	}
}

func (uc *DefaultConversionUsecase) newCommission(referral *domain.Referral, commissionType domain.CommissionType, amount, rateApplied float64) *domain.Commission {
	return &domain.Commission{
		ID:          uuid.New().String(),
		ReferralID:  referral.ID,
		PartnerID:   referral.PartnerID,
		Type:        commissionType,
		Amount:      amount,
		RateApplied: rateApplied,
		Status:      domain.CommissionPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (uc *DefaultConversionUsecase) duplicateOutput(referral *domain.Referral) (*conversiondto.ConversionOutput, error) {
	commissions, err := uc.commissionRepo.GetCommissionsByReferralID(referral.ID)
	if err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.ConversionsDuplicateTotal.WithLabelValues(string(referral.Platform), string(referral.EventType)).Inc()
	}
	return &conversiondto.ConversionOutput{
		Referral:    referral,
		Commissions: commissions,
		Duplicate:   true,
	}, nil
}

func (uc *DefaultConversionUsecase) notifyCommissionCreated(commission *domain.Commission) {
	if uc.publisher != nil {
		if err := uc.publisher.PublishCommissionCreated(commission); err != nil {
			slog.Error("failed to publish commission event", "commission_id", commission.ID, "error", err.Error())
		}
	}
	if uc.metrics != nil {
		uc.metrics.CommissionsCreatedTotal.WithLabelValues(commission.PartnerID, string(commission.Type)).Inc()
		uc.metrics.CommissionsCreatedAmountTotal.WithLabelValues(commission.PartnerID, string(commission.Type)).Add(commission.Amount)
	}
}

func (uc *DefaultConversionUsecase) countNoCommission(referral *domain.Referral, reason string) {
	if uc.metrics != nil {
		uc.metrics.ConversionsNoCommission.WithLabelValues(string(referral.Platform), string(referral.EventType), reason).Inc()
	}
}

// WithinConversionWindow checks calendar-day window arithmetic on the
// signup date, inclusive of the boundary day: a conversion any time during
// signup-day + windowDays still counts.
func WithinConversionWindow(signupAt, convertedAt time.Time, windowDays int) bool {
	if signupAt.IsZero() {
		return false
	}
	signupDay := time.Date(signupAt.Year(), signupAt.Month(), signupAt.Day(), 0, 0, 0, 0, signupAt.Location())
	deadline := signupDay.AddDate(0, 0, windowDays+1)
	return convertedAt.Before(deadline)
}

func validateConversionInput(input *conversiondto.RecordConversionInput) error {
	if input.ExternalRef == "" {
		return fmt.Errorf("%w: external reference is required", domain.ErrValidation)
	}
	if input.Platform != domain.PlatformShop && input.Platform != domain.PlatformMotorev {
		return fmt.Errorf("%w: unknown platform %q", domain.ErrValidation, input.Platform)
	}
	switch input.EventType {
	case domain.EventOrder, domain.EventLead:
		if input.Amount <= 0 {
			return fmt.Errorf("%w: %s event requires a positive amount", domain.ErrValidation, input.EventType)
		}
	case domain.EventProConversion:
		if input.SignupAt.IsZero() {
			return fmt.Errorf("%w: pro conversion requires a signup date", domain.ErrValidation)
		}
	case domain.EventSignup:
	default:
		return fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, input.EventType)
	}
	return nil
}
