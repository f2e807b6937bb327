package domain

import "time"

type Platform string

const (
	PlatformShop    Platform = "SHOP"
	PlatformMotorev Platform = "MOTOREV"
)

// AffiliateLink maps a partner-owned referral code to a platform and an
// optional target. Codes are globally unique and never reassigned: a dead
// code is deactivated, not recycled.
type AffiliateLink struct {
	ID         string
	PartnerID  string
	Code       string
	Platform   Platform
	Target     string
	Active     bool
	ClickCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Click is an append-only tracking event. It carries no financial weight.
type Click struct {
	ID        string
	LinkID    string
	PartnerID string
	SessionID string
	Referrer  string
	UserAgent string
	IP        string
	CreatedAt time.Time
}

type VisitorMeta struct {
	Referrer  string
	UserAgent string
	IP        string
}

// Attribution is what the conversion recorder reads back from the cookie pair.
type Attribution struct {
	Code      string
	LinkID    string
	PartnerID string
	Platform  Platform
}

type LinkRepository interface {
	CreateLink(link *AffiliateLink) error
	GetLinkByID(linkID string) (*AffiliateLink, error)
	GetActiveLinkByCode(code string) (*AffiliateLink, error)
	GetLatestActiveLinkByPartner(partnerID string, platform Platform) (*AffiliateLink, error)
	GetLinksByPartnerID(partnerID string) ([]*AffiliateLink, error)
	UpdateLinkActive(linkID string, active bool) error
	IncrementClickCount(linkID string) error
}

type ClickRepository interface {
	CreateClick(click *Click) error
	CountClicksByPartner(partnerID string) (int64, error)
}
