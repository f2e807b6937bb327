package usecase

import (
	"log/slog"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/metrics"
	attributiondto "github.com/47industries/affiliate-service/internal/usecase/dto/attribution"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// AttributionTTL is the fixed lifetime of the attribution cookie pair,
// counted from the latest click (last-touch).
const AttributionTTL = 30 * 24 * time.Hour

type AttributionUsecase interface {
	RecordClick(input *attributiondto.RecordClickInput) (*attributiondto.TrackResult, error)
	ResolveAttribution(code string) (*domain.Attribution, error)
}

type DefaultAttributionUsecase struct {
	linkRepo    domain.LinkRepository
	clickRepo   domain.ClickRepository
	partnerRepo domain.PartnerRepository
	metrics     *metrics.AffiliateMetrics
}

func NewDefaultAttributionUsecase(
	linkRepo domain.LinkRepository,
	clickRepo domain.ClickRepository,
	partnerRepo domain.PartnerRepository,
	affiliateMetrics *metrics.AffiliateMetrics,
) *DefaultAttributionUsecase {
	return &DefaultAttributionUsecase{
		linkRepo:    linkRepo,
		clickRepo:   clickRepo,
		partnerRepo: partnerRepo,
		metrics:     affiliateMetrics,
	}
}

// RecordClick never surfaces an error for a bad code: tracking must not
// break browsing, so failures are logged and a not-tracked result is
// returned instead.
func (uc *DefaultAttributionUsecase) RecordClick(input *attributiondto.RecordClickInput) (*attributiondto.TrackResult, error) {
	link, err := uc.resolveCode(input.Code)
	if err != nil {
		slog.Warn("click not tracked", "code", input.Code, "error", err.Error())
		if uc.metrics != nil {
			uc.metrics.ClicksRejectedTotal.WithLabelValues("unresolved_code").Inc()
		}
		return &attributiondto.TrackResult{Tracked: false}, nil
	}

	sessionID := input.SessionID
	if sessionID == "" {
		idGenerator, err := nanoid.Standard(21)
		if err != nil {
			return nil, err
		}
		sessionID = idGenerator()
	}

	click := domain.Click{
		ID:        uuid.New().String(),
		LinkID:    link.ID,
		PartnerID: link.PartnerID,
		SessionID: sessionID,
		Referrer:  input.Visitor.Referrer,
		UserAgent: input.Visitor.UserAgent,
		IP:        input.Visitor.IP,
		CreatedAt: time.Now(),
	}
	if err := uc.clickRepo.CreateClick(&click); err != nil {
		slog.Error("failed to record click", "link_id", link.ID, "error", err.Error())
		if uc.metrics != nil {
			uc.metrics.ClicksRejectedTotal.WithLabelValues("storage").Inc()
		}
		return &attributiondto.TrackResult{Tracked: false}, nil
	}

	if err := uc.linkRepo.IncrementClickCount(link.ID); err != nil {
		slog.Error("failed to increment click counter", "link_id", link.ID, "error", err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.ClicksTrackedTotal.WithLabelValues(link.PartnerID, string(link.Platform)).Inc()
	}

	return &attributiondto.TrackResult{
		Tracked:   true,
		SessionID: sessionID,
		Code:      link.Code,
		LinkID:    link.ID,
		PartnerID: link.PartnerID,
		Platform:  link.Platform,
		Target:    link.Target,
	}, nil
}

// ResolveAttribution is the pure lookup used by the conversion recorder.
func (uc *DefaultAttributionUsecase) ResolveAttribution(code string) (*domain.Attribution, error) {
	link, err := uc.resolveCode(code)
	if err != nil {
		return nil, err
	}
	return &domain.Attribution{
		Code:      link.Code,
		LinkID:    link.ID,
		PartnerID: link.PartnerID,
		Platform:  link.Platform,
	}, nil
}

// resolveCode matches a code to an active link. A bare partner-level code
// falls back to that partner's most recent active storefront link.
func (uc *DefaultAttributionUsecase) resolveCode(code string) (*domain.AffiliateLink, error) {
	if code == "" {
		return nil, domain.ErrNotFound
	}

	link, err := uc.linkRepo.GetActiveLinkByCode(code)
	if err == nil {
		if err := uc.requireActivePartner(link.PartnerID); err != nil {
			return nil, err
		}
		return link, nil
	}

	partner, err := uc.partnerRepo.GetActivePartnerByCode(code)
	if err != nil {
		return nil, err
	}
	return uc.linkRepo.GetLatestActiveLinkByPartner(partner.ID, domain.PlatformShop)
}

func (uc *DefaultAttributionUsecase) requireActivePartner(partnerID string) error {
	partner, err := uc.partnerRepo.GetPartnerByID(partnerID)
	if err != nil {
		return err
	}
	if partner.Status != domain.PartnerActive {
		return domain.ErrPartnerInactive
	}
	return nil
}
