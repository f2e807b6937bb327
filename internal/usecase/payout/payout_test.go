package payout

import (
	"errors"
	"testing"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/repository"
	payoutdto "github.com/47industries/affiliate-service/internal/usecase/dto/payout"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeTransfer struct {
	fail     bool
	requests []domain.TransferRequest
}

func (f *fakeTransfer) SendTransfer(request domain.TransferRequest) (*domain.TransferResult, error) {
	f.requests = append(f.requests, request)
	if f.fail {
		return nil, errors.New("rail unavailable")
	}
	return &domain.TransferResult{Reference: "tr-" + request.IdempotencyKey}, nil
}

type payoutTestEnv struct {
	payouts     *DefaultPayoutUsecase
	transfer    *fakeTransfer
	partnerRepo domain.PartnerRepository
	commissions domain.CommissionRepository
	referrals   domain.ReferralRepository
}

func setupPayoutTest(t *testing.T) *payoutTestEnv {
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
	commissionRepo := repository.NewDefaultCommissionRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	transfer := &fakeTransfer{}

	return &payoutTestEnv{
		payouts:     NewDefaultPayoutUsecase(payoutRepo, commissionRepo, partnerRepo, transfer, nil, nil),
		transfer:    transfer,
		partnerRepo: partnerRepo,
		commissions: commissionRepo,
		referrals:   repository.NewDefaultReferralRepository(db),
	}
}

func (env *payoutTestEnv) seedPartner(t *testing.T, transferAccount string) *domain.Partner {
	partner := domain.Partner{
		ID:              uuid.New().String(),
		Name:            "Garage 47",
		Email:           "garage@example.com",
		Code:            uuid.New().String()[:8],
		Status:          domain.PartnerActive,
		TransferAccount: transferAccount,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	require.NoError(t, env.partnerRepo.CreatePartner(&partner))
	return &partner
}

func (env *payoutTestEnv) seedCommission(t *testing.T, partnerID string, amount float64, status domain.CommissionStatus) *domain.Commission {
	referral := domain.Referral{
		ID:          uuid.New().String(),
		PartnerID:   partnerID,
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: uuid.New().String(),
		Amount:      amount * 20,
		ConvertedAt: time.Now(),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, env.referrals.CreateReferral(&referral))

	commission := domain.Commission{
		ID:          uuid.New().String(),
		ReferralID:  referral.ID,
		PartnerID:   partnerID,
		Type:        domain.CommissionShopOrder,
		Amount:      amount,
		RateApplied: 5,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, env.commissions.CreateCommission(&commission))
	return &commission
}

func TestCreatePayout_SumFrozen(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	first := env.seedCommission(t, partner.ID, 123.45, domain.CommissionApproved)
	second := env.seedCommission(t, partner.ID, 10.00, domain.CommissionPending)

	payout, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)
	assert.Equal(t, 133.45, payout.Amount)
	assert.Equal(t, domain.PayoutPending, payout.Status)

	for _, id := range []string{first.ID, second.ID} {
		stored, err := env.commissions.GetCommissionByID(id)
		require.NoError(t, err)
		require.NotNil(t, stored.PayoutID)
		assert.Equal(t, payout.ID, *stored.PayoutID)
	}

	// linked commissions are off the eligible pool
	_, err = env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	assert.ErrorIs(t, err, domain.ErrNoEligibleCommissions)
}

func TestCreatePayout_ExplicitSelection(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	picked := env.seedCommission(t, partner.ID, 40, domain.CommissionApproved)
	left := env.seedCommission(t, partner.ID, 60, domain.CommissionApproved)

	payout, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{
		PartnerID:     partner.ID,
		CommissionIDs: []string{picked.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 40.00, payout.Amount)

	stored, err := env.commissions.GetCommissionByID(left.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PayoutID)
}

func TestCreatePayout_RejectsForeignCommission(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	other := env.seedPartner(t, "acct-2")
	foreign := env.seedCommission(t, other.ID, 40, domain.CommissionApproved)

	_, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{
		PartnerID:     partner.ID,
		CommissionIDs: []string{foreign.ID},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecutePayout_Success(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	commission := env.seedCommission(t, partner.ID, 50, domain.CommissionApproved)

	created, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)

	paid, err := env.payouts.ExecutePayout(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutPaid, paid.Status)
	assert.Equal(t, "tr-"+created.ID, paid.TransferRef)
	require.NotNil(t, paid.PaidAt)

	// payout id is the transfer idempotency key
	require.Len(t, env.transfer.requests, 1)
	assert.Equal(t, created.ID, env.transfer.requests[0].IdempotencyKey)
	assert.Equal(t, "acct-1", env.transfer.requests[0].Destination)
	assert.Equal(t, 50.00, env.transfer.requests[0].Amount)

	// cascade
	stored, err := env.commissions.GetCommissionByID(commission.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionPaid, stored.Status)

	// a second execution finds the payout no longer pending
	_, err = env.payouts.ExecutePayout(created.ID)
	assert.ErrorIs(t, err, domain.ErrPayoutNotPending)
	assert.Len(t, env.transfer.requests, 1)
}

func TestExecutePayout_TransferFailureLeavesStateUntouched(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	commission := env.seedCommission(t, partner.ID, 50, domain.CommissionApproved)

	created, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)

	env.transfer.fail = true
	_, err = env.payouts.ExecutePayout(created.ID)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)

	stored, _, err := env.payouts.GetPayoutByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutPending, stored.Status)

	storedCommission, err := env.commissions.GetCommissionByID(commission.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionApproved, storedCommission.Status)

	// retry succeeds with the same idempotency key
	env.transfer.fail = false
	paid, err := env.payouts.ExecutePayout(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutPaid, paid.Status)
	assert.Equal(t, env.transfer.requests[0].IdempotencyKey, env.transfer.requests[1].IdempotencyKey)
}

func TestExecutePayout_NoDestination(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "")
	env.seedCommission(t, partner.ID, 50, domain.CommissionApproved)

	created, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)

	_, err = env.payouts.ExecutePayout(created.ID)
	assert.ErrorIs(t, err, domain.ErrNoTransferDestination)
	assert.Empty(t, env.transfer.requests)
}

func TestMarkPaid_ManualCascade(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "")
	commission := env.seedCommission(t, partner.ID, 75, domain.CommissionPending)

	created, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)

	paid, err := env.payouts.MarkPaid(created.ID, "wire-2026-08")
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutPaid, paid.Status)
	assert.Equal(t, domain.PayoutMethodManual, paid.Method)
	assert.Equal(t, "wire-2026-08", paid.TransferRef)
	assert.Empty(t, env.transfer.requests)

	stored, err := env.commissions.GetCommissionByID(commission.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionPaid, stored.Status)
}

func TestCancelPayout_UnlinksAndResets(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	commission := env.seedCommission(t, partner.ID, 50, domain.CommissionApproved)

	created, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)

	cancelled, err := env.payouts.CancelPayout(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutCancelled, cancelled.Status)

	// APPROVED is reset to PENDING along with the unlink
	stored, err := env.commissions.GetCommissionByID(commission.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PayoutID)
	assert.Equal(t, domain.CommissionPending, stored.Status)

	// released commission is eligible again
	again, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)
	assert.Equal(t, 50.00, again.Amount)
}

func TestCancelPayout_PaidRejected(t *testing.T) {
	env := setupPayoutTest(t)
	partner := env.seedPartner(t, "acct-1")
	env.seedCommission(t, partner.ID, 50, domain.CommissionApproved)

	created, err := env.payouts.CreatePayout(&payoutdto.CreatePayoutInput{PartnerID: partner.ID})
	require.NoError(t, err)
	_, err = env.payouts.ExecutePayout(created.ID)
	require.NoError(t, err)

	_, err = env.payouts.CancelPayout(created.ID)
	assert.ErrorIs(t, err, domain.ErrPayoutAlreadyPaid)
}
