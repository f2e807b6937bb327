package attribution

import "github.com/47industries/affiliate-service/internal/domain"

type RecordClickInput struct {
	Code      string
	SessionID string // empty on first visit
	Visitor   domain.VisitorMeta
}
