package httpapi

import (
	"net/http"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/usecase/conversion"
	conversiondto "github.com/47industries/affiliate-service/internal/usecase/dto/conversion"
	"github.com/labstack/echo/v4"
)

// EventHandler receives conversion webhooks from the shop and motorev
// backends. Both endpoints sit behind the shared-secret middleware.
type EventHandler struct {
	conversions conversion.Usecase
}

func NewEventHandler(conversions conversion.Usecase) *EventHandler {
	return &EventHandler{conversions: conversions}
}

type conversionRequest struct {
	Platform    string     `json:"platform" validate:"required,oneof=SHOP MOTOREV"`
	EventType   string     `json:"event_type" validate:"required,oneof=SIGNUP ORDER PRO_CONVERSION LEAD"`
	ExternalRef string     `json:"external_ref" validate:"required"`
	Code        string     `json:"code" validate:"required"`
	Amount      float64    `json:"amount"`
	SignupAt    *time.Time `json:"signup_at"`
	ConvertedAt *time.Time `json:"converted_at"`
}

type commissionResponse struct {
	ID          string  `json:"id"`
	ReferralID  string  `json:"referral_id"`
	PartnerID   string  `json:"partner_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	RateApplied float64 `json:"rate_applied"`
	Status      string  `json:"status"`
}

type conversionResponse struct {
	ReferralID  string               `json:"referral_id"`
	PartnerID   string               `json:"partner_id"`
	Duplicate   bool                 `json:"duplicate"`
	Commissions []commissionResponse `json:"commissions"`
}

// RecordConversion handles POST /api/v1/events/conversion. A re-delivered
// event returns 200 with the original outcome, never 409.
func (h *EventHandler) RecordConversion(c echo.Context) error {
	var req conversionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	input := conversiondto.RecordConversionInput{
		Platform:    domain.Platform(req.Platform),
		EventType:   domain.EventType(req.EventType),
		ExternalRef: req.ExternalRef,
		Code:        req.Code,
		Amount:      req.Amount,
	}
	if req.SignupAt != nil {
		input.SignupAt = *req.SignupAt
	}
	if req.ConvertedAt != nil {
		input.ConvertedAt = *req.ConvertedAt
	}

	output, err := h.conversions.RecordConversion(&input)
	if err != nil {
		return httpError(err)
	}

	status := http.StatusCreated
	if output.Duplicate {
		status = http.StatusOK
	}
	return c.JSON(status, toConversionResponse(output))
}

type recurringRequest struct {
	ReferralID    string  `json:"referral_id" validate:"required"`
	MonthlyAmount float64 `json:"monthly_amount" validate:"required,gt=0"`
}

// RecordRecurring handles POST /api/v1/events/recurring, one call per
// billing cycle of a closed lead.
func (h *EventHandler) RecordRecurring(c echo.Context) error {
	var req recurringRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	commission, err := h.conversions.RecordRecurring(&conversiondto.RecordRecurringInput{
		ReferralID:    req.ReferralID,
		MonthlyAmount: req.MonthlyAmount,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, toCommissionResponse(commission))
}

// GetReferral handles GET /api/v1/referrals/:id.
func (h *EventHandler) GetReferral(c echo.Context) error {
	output, err := h.conversions.GetReferralByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toConversionResponse(output))
}

// ListReferrals handles GET /api/v1/referrals.
func (h *EventHandler) ListReferrals(c echo.Context) error {
	filters := domain.ReferralFilters{
		PartnerID: c.QueryParam("partner_id"),
		Platform:  domain.Platform(c.QueryParam("platform")),
		EventType: domain.EventType(c.QueryParam("event_type")),
	}
	page, limit := pagination(c)

	referrals, total, err := h.conversions.GetReferrals(filters, page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"referrals": referrals,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func toConversionResponse(output *conversiondto.ConversionOutput) conversionResponse {
	resp := conversionResponse{
		ReferralID:  output.Referral.ID,
		PartnerID:   output.Referral.PartnerID,
		Duplicate:   output.Duplicate,
		Commissions: make([]commissionResponse, 0, len(output.Commissions)),
	}
	for _, commission := range output.Commissions {
		resp.Commissions = append(resp.Commissions, toCommissionResponse(commission))
	}
	return resp
}

func toCommissionResponse(commission *domain.Commission) commissionResponse {
	return commissionResponse{
		ID:          commission.ID,
		ReferralID:  commission.ReferralID,
		PartnerID:   commission.PartnerID,
		Type:        string(commission.Type),
		Amount:      commission.Amount,
		RateApplied: commission.RateApplied,
		Status:      string(commission.Status),
	}
}
