package conversion

import (
	"testing"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/repository"
	"github.com/47industries/affiliate-service/internal/usecase"
	conversiondto "github.com/47industries/affiliate-service/internal/usecase/dto/conversion"
	partnerdto "github.com/47industries/affiliate-service/internal/usecase/dto/partner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type conversionTestEnv struct {
	conversions *DefaultConversionUsecase
	partners    *usecase.DefaultPartnerUsecase
	referrals   domain.ReferralRepository
	commissions domain.CommissionRepository
}

func setupConversionTest(t *testing.T) *conversionTestEnv {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PartnerModel{},
		&models.AffiliateLinkModel{},
		&models.ClickModel{},
		&models.ReferralModel{},
		&models.CommissionModel{},
		&models.PayoutModel{},
	))

	partnerRepo := repository.NewDefaultPartnerRepository(db)
	linkRepo := repository.NewDefaultLinkRepository(db)
	clickRepo := repository.NewDefaultClickRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	commissionRepo := repository.NewDefaultCommissionRepository(db)

	attribution := usecase.NewDefaultAttributionUsecase(linkRepo, clickRepo, partnerRepo, nil)
	return &conversionTestEnv{
		conversions: NewDefaultConversionUsecase(referralRepo, commissionRepo, partnerRepo, attribution, nil, nil),
		partners:    usecase.NewDefaultPartnerUsecase(partnerRepo, linkRepo),
		referrals:   referralRepo,
		commissions: commissionRepo,
	}
}

func (env *conversionTestEnv) createPartnerWithLink(t *testing.T, platform domain.Platform) (*domain.Partner, *domain.AffiliateLink) {
	partner, err := env.partners.CreatePartner(&partnerdto.CreatePartnerInput{
		Name:               "Moto Blog",
		Email:              "blog@example.com",
		ShopCommissionRate: 5,
		FirstSaleRate:      10,
		RecurringRate:      5,
		ProBonus:           25,
		ProWindowDays:      30,
	})
	require.NoError(t, err)

	link, err := env.partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  platform,
	})
	require.NoError(t, err)

	return partner, link
}

func TestRecordConversion_OrderCommission(t *testing.T) {
	env := setupConversionTest(t)
	partner, link := env.createPartnerWithLink(t, domain.PlatformShop)

	output, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-1001",
		Code:        link.Code,
		Amount:      200,
	})
	require.NoError(t, err)
	require.False(t, output.Duplicate)
	require.Len(t, output.Commissions, 1)

	commission := output.Commissions[0]
	assert.Equal(t, 10.00, commission.Amount)
	assert.Equal(t, 5.0, commission.RateApplied)
	assert.Equal(t, domain.CommissionShopOrder, commission.Type)
	assert.Equal(t, domain.CommissionPending, commission.Status)
	assert.Equal(t, partner.ID, commission.PartnerID)
}

func TestRecordConversion_Idempotent(t *testing.T) {
	env := setupConversionTest(t)
	_, link := env.createPartnerWithLink(t, domain.PlatformShop)

	input := conversiondto.RecordConversionInput{
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-2002",
		Code:        link.Code,
		Amount:      99.99,
	}

	first, err := env.conversions.RecordConversion(&input)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	second, err := env.conversions.RecordConversion(&input)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Referral.ID, second.Referral.ID)

	// only one ledger entry exists for the event
	commissions, err := env.commissions.GetCommissionsByReferralID(first.Referral.ID)
	require.NoError(t, err)
	assert.Len(t, commissions, 1)
}

func TestRecordConversion_ProWindow(t *testing.T) {
	env := setupConversionTest(t)
	_, link := env.createPartnerWithLink(t, domain.PlatformMotorev)

	signup := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)

	// late on the boundary day still counts
	inside, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformMotorev,
		EventType:   domain.EventProConversion,
		ExternalRef: "user-1",
		Code:        link.Code,
		SignupAt:    signup,
		ConvertedAt: time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, inside.Commissions, 1)
	assert.Equal(t, 25.00, inside.Commissions[0].Amount)
	assert.Equal(t, domain.CommissionProConversion, inside.Commissions[0].Type)

	// one day past the window: referral recorded, no commission
	outside, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformMotorev,
		EventType:   domain.EventProConversion,
		ExternalRef: "user-2",
		Code:        link.Code,
		SignupAt:    signup,
		ConvertedAt: time.Date(2026, 4, 1, 0, 1, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotNil(t, outside.Referral)
	assert.Empty(t, outside.Commissions)
}

func TestRecordConversion_SignupEarnsNothing(t *testing.T) {
	env := setupConversionTest(t)
	_, link := env.createPartnerWithLink(t, domain.PlatformMotorev)

	output, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformMotorev,
		EventType:   domain.EventSignup,
		ExternalRef: "user-3",
		Code:        link.Code,
	})
	require.NoError(t, err)
	assert.NotNil(t, output.Referral)
	assert.Empty(t, output.Commissions)
}

func TestRecordConversion_UnknownCode(t *testing.T) {
	env := setupConversionTest(t)

	_, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-3003",
		Code:        "nosuchcode",
		Amount:      50,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordConversion_RateUpdateNotRetroactive(t *testing.T) {
	env := setupConversionTest(t)
	partner, link := env.createPartnerWithLink(t, domain.PlatformShop)

	before, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-4001",
		Code:        link.Code,
		Amount:      100,
	})
	require.NoError(t, err)

	_, err = env.partners.UpdateRates(&partnerdto.UpdateRatesInput{
		PartnerID:          partner.ID,
		ShopCommissionRate: 20,
		FirstSaleRate:      10,
		RecurringRate:      5,
		ProBonus:           25,
		ProWindowDays:      30,
	})
	require.NoError(t, err)

	// the historical entry keeps its snapshot
	stored, err := env.commissions.GetCommissionByID(before.Commissions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 5.00, stored.Amount)
	assert.Equal(t, 5.0, stored.RateApplied)

	// new events use the new rate
	after, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-4002",
		Code:        link.Code,
		Amount:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.00, after.Commissions[0].Amount)
}

func TestRecordRecurring(t *testing.T) {
	env := setupConversionTest(t)
	_, link := env.createPartnerWithLink(t, domain.PlatformMotorev)

	lead, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformMotorev,
		EventType:   domain.EventLead,
		ExternalRef: "deal-1",
		Code:        link.Code,
		Amount:      5000,
	})
	require.NoError(t, err)

	commission, err := env.conversions.RecordRecurring(&conversiondto.RecordRecurringInput{
		ReferralID:    lead.Referral.ID,
		MonthlyAmount: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.00, commission.Amount)
	assert.Equal(t, domain.CommissionLeadRecurring, commission.Type)
	assert.Equal(t, domain.CommissionPending, commission.Status)

	// a second cycle appends another entry against the same referral
	_, err = env.conversions.RecordRecurring(&conversiondto.RecordRecurringInput{
		ReferralID:    lead.Referral.ID,
		MonthlyAmount: 500,
	})
	require.NoError(t, err)

	commissions, err := env.commissions.GetCommissionsByReferralID(lead.Referral.ID)
	require.NoError(t, err)
	assert.Len(t, commissions, 3) // first-sale plus two cycles
}

func TestRecordRecurring_RejectsNonLead(t *testing.T) {
	env := setupConversionTest(t)
	_, link := env.createPartnerWithLink(t, domain.PlatformShop)

	order, err := env.conversions.RecordConversion(&conversiondto.RecordConversionInput{
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-5001",
		Code:        link.Code,
		Amount:      80,
	})
	require.NoError(t, err)

	_, err = env.conversions.RecordRecurring(&conversiondto.RecordRecurringInput{
		ReferralID:    order.Referral.ID,
		MonthlyAmount: 100,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWithinConversionWindow(t *testing.T) {
	signup := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)

	assert.True(t, WithinConversionWindow(signup, signup, 30))
	assert.True(t, WithinConversionWindow(signup, time.Date(2026, 2, 9, 23, 59, 59, 0, time.UTC), 30))
	assert.False(t, WithinConversionWindow(signup, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 30))
	assert.False(t, WithinConversionWindow(time.Time{}, signup, 30))
}
