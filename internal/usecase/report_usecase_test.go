package usecase

import (
	"testing"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPartnerSummary(t *testing.T) {
	db := setupTestDB(t)
	partnerRepo := repository.NewDefaultPartnerRepository(db)
	linkRepo := repository.NewDefaultLinkRepository(db)
	clickRepo := repository.NewDefaultClickRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	commissionRepo := repository.NewDefaultCommissionRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)

	reports := NewDefaultReportUsecase(partnerRepo, clickRepo, referralRepo, commissionRepo, payoutRepo)
	partners := NewDefaultPartnerUsecase(partnerRepo, linkRepo)
	partner := createTestPartner(t, partners)

	referral := domain.Referral{
		ID:          uuid.New().String(),
		PartnerID:   partner.ID,
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-1",
		ConvertedAt: time.Now(),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, referralRepo.CreateReferral(&referral))

	for _, seed := range []struct {
		amount float64
		status domain.CommissionStatus
	}{
		{10.50, domain.CommissionPending},
		{4.50, domain.CommissionPending},
		{20.00, domain.CommissionApproved},
		{7.25, domain.CommissionPaid},
	} {
		require.NoError(t, commissionRepo.CreateCommission(&domain.Commission{
			ID:         uuid.New().String(),
			ReferralID: referral.ID,
			PartnerID:  partner.ID,
			Type:       domain.CommissionShopOrder,
			Amount:     seed.amount,
			Status:     seed.status,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}))
	}

	require.NoError(t, clickRepo.CreateClick(&domain.Click{
		ID:        uuid.New().String(),
		LinkID:    uuid.New().String(),
		PartnerID: partner.ID,
		SessionID: "s-1",
		CreatedAt: time.Now(),
	}))

	summary, err := reports.GetPartnerSummary(partner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Clicks)
	assert.Equal(t, int64(1), summary.Referrals)
	assert.Equal(t, 15.00, summary.CommissionPending)
	assert.Equal(t, 20.00, summary.CommissionApproved)
	assert.Equal(t, 7.25, summary.CommissionPaid)
	assert.Equal(t, 0.00, summary.PayoutPending)
}

func TestGetPartnerSummary_UnknownPartner(t *testing.T) {
	db := setupTestDB(t)
	reports := NewDefaultReportUsecase(
		repository.NewDefaultPartnerRepository(db),
		repository.NewDefaultClickRepository(db),
		repository.NewDefaultReferralRepository(db),
		repository.NewDefaultCommissionRepository(db),
		repository.NewDefaultPayoutRepository(db),
	)

	_, err := reports.GetPartnerSummary(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
