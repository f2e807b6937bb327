package usecase

import (
	"fmt"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/metrics"
)

type CommissionLedgerUsecase interface {
	ApproveCommission(commissionID string) (*domain.Commission, error)
	UpdateCommissionAmount(commissionID string, amount float64) (*domain.Commission, error)
	DeleteCommission(commissionID string) error
	GetCommissionByID(commissionID string) (*domain.Commission, error)
	GetCommissions(filters domain.CommissionFilters, page, limit int64) ([]*domain.Commission, int64, error)
}

// DefaultCommissionLedgerUsecase owns direct commission status writes.
// PAID is deliberately unreachable here: it only arrives through the
// payout cascade.
type DefaultCommissionLedgerUsecase struct {
	commissionRepo domain.CommissionRepository
	metrics        *metrics.AffiliateMetrics
}

func NewDefaultCommissionLedgerUsecase(commissionRepo domain.CommissionRepository, affiliateMetrics *metrics.AffiliateMetrics) *DefaultCommissionLedgerUsecase {
	return &DefaultCommissionLedgerUsecase{
		commissionRepo: commissionRepo,
		metrics:        affiliateMetrics,
	}
}

func (uc *DefaultCommissionLedgerUsecase) ApproveCommission(commissionID string) (*domain.Commission, error) {
	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionCommission(commission.Status, domain.CommissionApproved) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, commission.Status, domain.CommissionApproved)
	}
	if err := uc.commissionRepo.UpdateCommissionStatus(commissionID, domain.CommissionApproved); err != nil {
		return nil, err
	}
	commission.Status = domain.CommissionApproved

	if uc.metrics != nil {
		uc.metrics.CommissionsApprovedTotal.WithLabelValues(commission.PartnerID).Inc()
	}

	return commission, nil
}

// UpdateCommissionAmount only applies to unlinked PENDING entries. Once a
// payout references the commission the amount is frozen for good.
func (uc *DefaultCommissionLedgerUsecase) UpdateCommissionAmount(commissionID string, amount float64) (*domain.Commission, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return nil, err
	}
	if commission.Locked() {
		return nil, domain.ErrCommissionLocked
	}
	if commission.Status != domain.CommissionPending {
		return nil, fmt.Errorf("%w: amount can only change while pending", domain.ErrInvalidTransition)
	}

	rounded := domain.RoundMoney(amount)
	if err := uc.commissionRepo.UpdateCommissionAmount(commissionID, rounded); err != nil {
		return nil, err
	}
	commission.Amount = rounded

	return commission, nil
}

func (uc *DefaultCommissionLedgerUsecase) DeleteCommission(commissionID string) error {
	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return err
	}
	if commission.Locked() {
		return domain.ErrCommissionLocked
	}
	if commission.Status == domain.CommissionPaid {
		return domain.ErrCommissionPaid
	}
	return uc.commissionRepo.DeleteCommission(commissionID)
}

func (uc *DefaultCommissionLedgerUsecase) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	return uc.commissionRepo.GetCommissionByID(commissionID)
}

func (uc *DefaultCommissionLedgerUsecase) GetCommissions(filters domain.CommissionFilters, page, limit int64) ([]*domain.Commission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.commissionRepo.GetCommissions(filters, page, limit)
}
