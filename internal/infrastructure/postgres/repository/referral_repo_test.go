package repository

import (
	"testing"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) *gorm.DB {
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
	return db
}

func TestCreateReferral_DuplicateEventKey(t *testing.T) {
	repo := NewDefaultReferralRepository(setupRepoTest(t))

	referral := domain.Referral{
		ID:          uuid.New().String(),
		PartnerID:   uuid.New().String(),
		Platform:    domain.PlatformShop,
		EventType:   domain.EventOrder,
		ExternalRef: "order-1",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.CreateReferral(&referral))

	// same key, different row id
	duplicate := referral
	duplicate.ID = uuid.New().String()
	err := repo.CreateReferral(&duplicate)
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

	// same external ref on a different event type is a distinct event
	distinct := referral
	distinct.ID = uuid.New().String()
	distinct.EventType = domain.EventSignup
	assert.NoError(t, repo.CreateReferral(&distinct))
}

func TestGetReferralByEventKey(t *testing.T) {
	repo := NewDefaultReferralRepository(setupRepoTest(t))

	referral := domain.Referral{
		ID:          uuid.New().String(),
		PartnerID:   uuid.New().String(),
		Platform:    domain.PlatformMotorev,
		EventType:   domain.EventLead,
		ExternalRef: "deal-9",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.CreateReferral(&referral))

	found, err := repo.GetReferralByEventKey(domain.PlatformMotorev, domain.EventLead, "deal-9")
	require.NoError(t, err)
	assert.Equal(t, referral.ID, found.ID)

	_, err = repo.GetReferralByEventKey(domain.PlatformShop, domain.EventLead, "deal-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
