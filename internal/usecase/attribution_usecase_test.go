package usecase

import (
	"testing"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/repository"
	attributiondto "github.com/47industries/affiliate-service/internal/usecase/dto/attribution"
	partnerdto "github.com/47industries/affiliate-service/internal/usecase/dto/partner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAttributionTest(t *testing.T) (*DefaultAttributionUsecase, *DefaultPartnerUsecase, *gorm.DB) {
	db := setupTestDB(t)
	partnerRepo := repository.NewDefaultPartnerRepository(db)
	linkRepo := repository.NewDefaultLinkRepository(db)
	clickRepo := repository.NewDefaultClickRepository(db)

	attribution := NewDefaultAttributionUsecase(linkRepo, clickRepo, partnerRepo, nil)
	partners := NewDefaultPartnerUsecase(partnerRepo, linkRepo)
	return attribution, partners, db
}

func createTestPartner(t *testing.T, partners *DefaultPartnerUsecase) *domain.Partner {
	partner, err := partners.CreatePartner(&partnerdto.CreatePartnerInput{
		Name:               "Track Day Vlog",
		Email:              "vlog@example.com",
		ShopCommissionRate: 5,
	})
	require.NoError(t, err)
	return partner
}

func TestRecordClick_Tracked(t *testing.T) {
	attribution, partners, _ := setupAttributionTest(t)
	partner := createTestPartner(t, partners)

	link, err := partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  domain.PlatformShop,
		Target:    "https://shop.example.com/helmets",
	})
	require.NoError(t, err)

	result, err := attribution.RecordClick(&attributiondto.RecordClickInput{Code: link.Code})
	require.NoError(t, err)
	assert.True(t, result.Tracked)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, link.Code, result.Code)
	assert.Equal(t, partner.ID, result.PartnerID)
	assert.Equal(t, "https://shop.example.com/helmets", result.Target)

	// counter moved
	stored, err := partners.GetLinksByPartnerID(partner.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, int64(1), stored[0].ClickCount)
}

func TestRecordClick_SessionReused(t *testing.T) {
	attribution, partners, _ := setupAttributionTest(t)
	partner := createTestPartner(t, partners)

	link, err := partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  domain.PlatformShop,
	})
	require.NoError(t, err)

	first, err := attribution.RecordClick(&attributiondto.RecordClickInput{Code: link.Code})
	require.NoError(t, err)

	second, err := attribution.RecordClick(&attributiondto.RecordClickInput{
		Code:      link.Code,
		SessionID: first.SessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestRecordClick_SwallowsBadCode(t *testing.T) {
	attribution, _, _ := setupAttributionTest(t)

	result, err := attribution.RecordClick(&attributiondto.RecordClickInput{Code: "deadlink"})
	require.NoError(t, err)
	assert.False(t, result.Tracked)
}

func TestRecordClick_InactivePartnerNotTracked(t *testing.T) {
	attribution, partners, _ := setupAttributionTest(t)
	partner := createTestPartner(t, partners)

	link, err := partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  domain.PlatformShop,
	})
	require.NoError(t, err)

	require.NoError(t, partners.DeactivatePartner(partner.ID))

	result, err := attribution.RecordClick(&attributiondto.RecordClickInput{Code: link.Code})
	require.NoError(t, err)
	assert.False(t, result.Tracked)
}

func TestResolveAttribution_PartnerCodeFallback(t *testing.T) {
	attribution, partners, _ := setupAttributionTest(t)
	partner := createTestPartner(t, partners)

	// older link, then the one the bare code should fall back to
	_, err := partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  domain.PlatformShop,
	})
	require.NoError(t, err)
	latest, err := partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  domain.PlatformShop,
	})
	require.NoError(t, err)

	resolved, err := attribution.ResolveAttribution(partner.Code)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, resolved.LinkID)
	assert.Equal(t, partner.ID, resolved.PartnerID)
}

func TestResolveAttribution_DeactivatedLink(t *testing.T) {
	attribution, partners, _ := setupAttributionTest(t)
	partner := createTestPartner(t, partners)

	link, err := partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: partner.ID,
		Platform:  domain.PlatformShop,
	})
	require.NoError(t, err)
	require.NoError(t, partners.DeactivateLink(link.ID))

	_, err = attribution.ResolveAttribution(link.Code)
	assert.Error(t, err)
}
