package httpapi

import (
	"net/http"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/usecase/payout"
	payoutdto "github.com/47industries/affiliate-service/internal/usecase/dto/payout"
	"github.com/labstack/echo/v4"
)

type PayoutHandler struct {
	payouts payout.Usecase
}

func NewPayoutHandler(payouts payout.Usecase) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

type createPayoutRequest struct {
	PartnerID     string   `json:"partner_id" validate:"required"`
	CommissionIDs []string `json:"commission_ids"`
}

type payoutResponse struct {
	ID          string     `json:"id"`
	PartnerID   string     `json:"partner_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Method      string     `json:"method"`
	TransferRef string     `json:"transfer_ref,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// Create handles POST /api/v1/payouts. No commission ids means "batch
// everything currently eligible".
func (h *PayoutHandler) Create(c echo.Context) error {
	var req createPayoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	p, err := h.payouts.CreatePayout(&payoutdto.CreatePayoutInput{
		PartnerID:     req.PartnerID,
		CommissionIDs: req.CommissionIDs,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toPayoutResponse(p))
}

// Execute handles POST /api/v1/payouts/:id/execute, the transfer-rail path.
func (h *PayoutHandler) Execute(c echo.Context) error {
	p, err := h.payouts.ExecutePayout(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toPayoutResponse(p))
}

type markPaidRequest struct {
	Reference string `json:"reference"`
}

// MarkPaid handles POST /api/v1/payouts/:id/mark-paid for money moved
// outside the system.
func (h *PayoutHandler) MarkPaid(c echo.Context) error {
	var req markPaidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := h.payouts.MarkPaid(c.Param("id"), req.Reference)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toPayoutResponse(p))
}

// Cancel handles POST /api/v1/payouts/:id/cancel. Linked commissions go back
// to PENDING and become eligible for a future batch.
func (h *PayoutHandler) Cancel(c echo.Context) error {
	p, err := h.payouts.CancelPayout(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toPayoutResponse(p))
}

func (h *PayoutHandler) Get(c echo.Context) error {
	p, commissions, err := h.payouts.GetPayoutByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	items := make([]commissionResponse, 0, len(commissions))
	for _, commission := range commissions {
		items = append(items, toCommissionResponse(commission))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"payout":      toPayoutResponse(p),
		"commissions": items,
	})
}

func (h *PayoutHandler) List(c echo.Context) error {
	filters := domain.PayoutFilters{
		PartnerID: c.QueryParam("partner_id"),
		Status:    domain.PayoutStatus(c.QueryParam("status")),
	}
	page, limit := pagination(c)

	payouts, total, err := h.payouts.GetPayouts(filters, page, limit)
	if err != nil {
		return httpError(err)
	}

	items := make([]payoutResponse, 0, len(payouts))
	for _, p := range payouts {
		items = append(items, toPayoutResponse(p))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"payouts": items,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func toPayoutResponse(p *domain.Payout) payoutResponse {
	return payoutResponse{
		ID:          p.ID,
		PartnerID:   p.PartnerID,
		Amount:      p.Amount,
		Status:      string(p.Status),
		Method:      string(p.Method),
		TransferRef: p.TransferRef,
		PaidAt:      p.PaidAt,
	}
}
