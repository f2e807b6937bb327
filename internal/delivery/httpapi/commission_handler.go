package httpapi

import (
	"net/http"
	"strconv"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/usecase"
	"github.com/labstack/echo/v4"
)

type CommissionHandler struct {
	ledger usecase.CommissionLedgerUsecase
}

func NewCommissionHandler(ledger usecase.CommissionLedgerUsecase) *CommissionHandler {
	return &CommissionHandler{ledger: ledger}
}

// Approve handles POST /api/v1/commissions/:id/approve.
func (h *CommissionHandler) Approve(c echo.Context) error {
	commission, err := h.ledger.ApproveCommission(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCommissionResponse(commission))
}

type updateAmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// UpdateAmount handles PATCH /api/v1/commissions/:id/amount. Only works on
// unlinked PENDING entries.
func (h *CommissionHandler) UpdateAmount(c echo.Context) error {
	var req updateAmountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	commission, err := h.ledger.UpdateCommissionAmount(c.Param("id"), req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCommissionResponse(commission))
}

// Delete handles DELETE /api/v1/commissions/:id.
func (h *CommissionHandler) Delete(c echo.Context) error {
	if err := h.ledger.DeleteCommission(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CommissionHandler) Get(c echo.Context) error {
	commission, err := h.ledger.GetCommissionByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCommissionResponse(commission))
}

func (h *CommissionHandler) List(c echo.Context) error {
	filters := domain.CommissionFilters{
		PartnerID:  c.QueryParam("partner_id"),
		ReferralID: c.QueryParam("referral_id"),
		Status:     domain.CommissionStatus(c.QueryParam("status")),
		Type:       domain.CommissionType(c.QueryParam("type")),
	}
	page, limit := pagination(c)

	commissions, total, err := h.ledger.GetCommissions(filters, page, limit)
	if err != nil {
		return httpError(err)
	}

	items := make([]commissionResponse, 0, len(commissions))
	for _, commission := range commissions {
		items = append(items, toCommissionResponse(commission))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"commissions": items,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

func pagination(c echo.Context) (page, limit int64) {
	page, _ = strconv.ParseInt(c.QueryParam("page"), 10, 64)
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
