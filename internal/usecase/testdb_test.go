package usecase

import (
	"testing"

	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
