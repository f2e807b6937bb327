package conversion

import (
	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/metrics"
	"github.com/47industries/affiliate-service/internal/usecase"
	conversiondto "github.com/47industries/affiliate-service/internal/usecase/dto/conversion"
)

type Usecase interface {
	RecordConversion(input *conversiondto.RecordConversionInput) (*conversiondto.ConversionOutput, error)
	RecordRecurring(input *conversiondto.RecordRecurringInput) (*domain.Commission, error)
	GetReferralByID(referralID string) (*conversiondto.ConversionOutput, error)
	GetReferrals(filters domain.ReferralFilters, page, limit int64) ([]*domain.Referral, int64, error)
}

// DefaultConversionUsecase turns one external business event into at most
// one referral plus its commissions, with partner rates snapshotted at
// event time.
type DefaultConversionUsecase struct {
	referralRepo   domain.ReferralRepository
	commissionRepo domain.CommissionRepository
	partnerRepo    domain.PartnerRepository
	attribution    usecase.AttributionUsecase
	publisher      domain.LedgerEventPublisher
	metrics        *metrics.AffiliateMetrics
}

func NewDefaultConversionUsecase(
	referralRepo domain.ReferralRepository,
	commissionRepo domain.CommissionRepository,
	partnerRepo domain.PartnerRepository,
	attribution usecase.AttributionUsecase,
	publisher domain.LedgerEventPublisher,
	affiliateMetrics *metrics.AffiliateMetrics,
) *DefaultConversionUsecase {
	return &DefaultConversionUsecase{
		referralRepo:   referralRepo,
		commissionRepo: commissionRepo,
		partnerRepo:    partnerRepo,
		attribution:    attribution,
		publisher:      publisher,
		metrics:        affiliateMetrics,
	}
}
