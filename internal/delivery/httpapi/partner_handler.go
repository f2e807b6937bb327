package httpapi

import (
	"net/http"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/usecase"
	partnerdto "github.com/47industries/affiliate-service/internal/usecase/dto/partner"
	"github.com/labstack/echo/v4"
)

type PartnerHandler struct {
	partners usecase.PartnerUsecase
}

func NewPartnerHandler(partners usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

type createPartnerRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=200"`
	Email              string  `json:"email" validate:"required,email"`
	Code               string  `json:"code" validate:"omitempty,min=3,max=32,lowercase,alphanum"`
	ShopCommissionRate float64 `json:"shop_commission_rate" validate:"gte=0,lte=100"`
	FirstSaleRate      float64 `json:"first_sale_rate" validate:"gte=0,lte=100"`
	RecurringRate      float64 `json:"recurring_rate" validate:"gte=0,lte=100"`
	ProBonus           float64 `json:"pro_bonus" validate:"gte=0"`
	ProWindowDays      int     `json:"pro_window_days" validate:"gte=0"`
	TransferAccount    string  `json:"transfer_account"`
}

func (h *PartnerHandler) Create(c echo.Context) error {
	var req createPartnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	partner, err := h.partners.CreatePartner(&partnerdto.CreatePartnerInput{
		Name:               req.Name,
		Email:              req.Email,
		Code:               req.Code,
		ShopCommissionRate: req.ShopCommissionRate,
		FirstSaleRate:      req.FirstSaleRate,
		RecurringRate:      req.RecurringRate,
		ProBonus:           req.ProBonus,
		ProWindowDays:      req.ProWindowDays,
		TransferAccount:    req.TransferAccount,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, partner)
}

func (h *PartnerHandler) Get(c echo.Context) error {
	partner, err := h.partners.GetPartnerByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, partner)
}

type updateRatesRequest struct {
	ShopCommissionRate float64 `json:"shop_commission_rate" validate:"gte=0,lte=100"`
	FirstSaleRate      float64 `json:"first_sale_rate" validate:"gte=0,lte=100"`
	RecurringRate      float64 `json:"recurring_rate" validate:"gte=0,lte=100"`
	ProBonus           float64 `json:"pro_bonus" validate:"gte=0"`
	ProWindowDays      int     `json:"pro_window_days" validate:"gte=0"`
	TransferAccount    string  `json:"transfer_account"`
}

// UpdateRates changes future commission configuration only; historical
// entries keep their snapshotted rate.
func (h *PartnerHandler) UpdateRates(c echo.Context) error {
	var req updateRatesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	partner, err := h.partners.UpdateRates(&partnerdto.UpdateRatesInput{
		PartnerID:          c.Param("id"),
		ShopCommissionRate: req.ShopCommissionRate,
		FirstSaleRate:      req.FirstSaleRate,
		RecurringRate:      req.RecurringRate,
		ProBonus:           req.ProBonus,
		ProWindowDays:      req.ProWindowDays,
		TransferAccount:    req.TransferAccount,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, partner)
}

func (h *PartnerHandler) Deactivate(c echo.Context) error {
	if err := h.partners.DeactivatePartner(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type createLinkRequest struct {
	PartnerID string `json:"partner_id" validate:"required"`
	Code      string `json:"code" validate:"omitempty,min=3,max=32,lowercase,alphanum"`
	Platform  string `json:"platform" validate:"required,oneof=SHOP MOTOREV"`
	Target    string `json:"target" validate:"omitempty,url"`
}

func (h *PartnerHandler) CreateLink(c echo.Context) error {
	var req createLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	link, err := h.partners.CreateLink(&partnerdto.CreateLinkInput{
		PartnerID: req.PartnerID,
		Code:      req.Code,
		Platform:  domain.Platform(req.Platform),
		Target:    req.Target,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, link)
}

func (h *PartnerHandler) ListLinks(c echo.Context) error {
	links, err := h.partners.GetLinksByPartnerID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"links": links,
		"count": len(links),
	})
}

func (h *PartnerHandler) DeactivateLink(c echo.Context) error {
	if err := h.partners.DeactivateLink(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
