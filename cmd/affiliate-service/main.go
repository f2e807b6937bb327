package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/47industries/affiliate-service/internal/client"
	"github.com/47industries/affiliate-service/internal/config"
	"github.com/47industries/affiliate-service/internal/delivery/httpapi"
	"github.com/47industries/affiliate-service/internal/infrastructure/kafka"
	"github.com/47industries/affiliate-service/internal/infrastructure/metrics"
	"github.com/47industries/affiliate-service/internal/infrastructure/migrate"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/repository"
	"github.com/47industries/affiliate-service/internal/usecase"
	"github.com/47industries/affiliate-service/internal/usecase/conversion"
	"github.com/47industries/affiliate-service/internal/usecase/payout"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.AffiliateDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.AffiliateDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewDefaultLedgerPublisher(brokers)

	affiliateMetrics := metrics.NewAffiliateMetrics()

	// Init repositories
	partnerRepo := repository.NewDefaultPartnerRepository(db)
	linkRepo := repository.NewDefaultLinkRepository(db)
	clickRepo := repository.NewDefaultClickRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	commissionRepo := repository.NewDefaultCommissionRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)

	// Init transfer client
	transferClient, err := client.NewHTTPTransferClient(cfg.TransferService.Address)
	if err != nil {
		log.Fatalf("failed to init transfer client: %v", err)
	}

	// Init usecases
	attributionUsecase := usecase.NewDefaultAttributionUsecase(linkRepo, clickRepo, partnerRepo, affiliateMetrics)
	partnerUsecase := usecase.NewDefaultPartnerUsecase(partnerRepo, linkRepo)
	conversionUsecase := conversion.NewDefaultConversionUsecase(
		referralRepo,
		commissionRepo,
		partnerRepo,
		attributionUsecase,
		publisher,
		affiliateMetrics,
	)
	ledgerUsecase := usecase.NewDefaultCommissionLedgerUsecase(commissionRepo, affiliateMetrics)
	payoutUsecase := payout.NewDefaultPayoutUsecase(
		payoutRepo,
		commissionRepo,
		partnerRepo,
		transferClient,
		publisher,
		affiliateMetrics,
	)
	reportUsecase := usecase.NewDefaultReportUsecase(partnerRepo, clickRepo, referralRepo, commissionRepo, payoutRepo)

	// HTTP delivery
	router := httpapi.NewRouter(httpapi.Handlers{
		Tracking:   httpapi.NewTrackingHandler(attributionUsecase, cfg.Tracking.ShopBaseURL, cfg.Tracking.MotorevBaseURL),
		Events:     httpapi.NewEventHandler(conversionUsecase),
		Partners:   httpapi.NewPartnerHandler(partnerUsecase),
		Commission: httpapi.NewCommissionHandler(ledgerUsecase),
		Payouts:    httpapi.NewPayoutHandler(payoutUsecase),
		Reports:    httpapi.NewReportHandler(reportUsecase),
	}, cfg.Events.SharedSecret)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Start(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.AffiliateConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
