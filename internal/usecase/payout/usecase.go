package payout

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/metrics"
	payoutdto "github.com/47industries/affiliate-service/internal/usecase/dto/payout"
)

type Usecase interface {
	CreatePayout(input *payoutdto.CreatePayoutInput) (*domain.Payout, error)
	ExecutePayout(payoutID string) (*domain.Payout, error)
	MarkPaid(payoutID, reference string) (*domain.Payout, error)
	CancelPayout(payoutID string) (*domain.Payout, error)
	GetPayoutByID(payoutID string) (*domain.Payout, []*domain.Commission, error)
	GetPayouts(filters domain.PayoutFilters, page, limit int64) ([]*domain.Payout, int64, error)
}

// DefaultPayoutUsecase batches commissions into payouts and drives them
// through the external transfer rail. All multi-row mutations go through
// PayoutTxRepository so commission links commit atomically with the payout.
type DefaultPayoutUsecase struct {
	payoutRepo     domain.PayoutRepository
	commissionRepo domain.CommissionRepository
	partnerRepo    domain.PartnerRepository
	transfer       domain.TransferProvider
	publisher      domain.LedgerEventPublisher
	metrics        *metrics.AffiliateMetrics
}

func NewDefaultPayoutUsecase(
	payoutRepo domain.PayoutRepository,
	commissionRepo domain.CommissionRepository,
	partnerRepo domain.PartnerRepository,
	transfer domain.TransferProvider,
	publisher domain.LedgerEventPublisher,
	affiliateMetrics *metrics.AffiliateMetrics,
) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		payoutRepo:     payoutRepo,
		commissionRepo: commissionRepo,
		partnerRepo:    partnerRepo,
		transfer:       transfer,
		publisher:      publisher,
		metrics:        affiliateMetrics,
	}
}
