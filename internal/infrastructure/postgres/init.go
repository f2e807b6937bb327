package postgres

import (
	"log"

	"github.com/47industries/affiliate-service/internal/config"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AffiliateConfig) *gorm.DB {
	dsn := cfg.AffiliateDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PartnerModel{},
		&models.AffiliateLinkModel{},
		&models.ClickModel{},
		&models.ReferralModel{},
		&models.CommissionModel{},
		&models.PayoutModel{},
	)

	return db
}
