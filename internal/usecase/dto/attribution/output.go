package attribution

import "github.com/47industries/affiliate-service/internal/domain"

// TrackResult tells the delivery layer what to put in the attribution
// cookies. Tracked=false means the click was swallowed (bad or inactive
// code) and no cookies should be touched.
type TrackResult struct {
	Tracked   bool
	SessionID string
	Code      string
	LinkID    string
	PartnerID string
	Platform  domain.Platform
	Target    string
}
