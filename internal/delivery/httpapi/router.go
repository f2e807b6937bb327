package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Handlers struct {
	Tracking   *TrackingHandler
	Events     *EventHandler
	Partners   *PartnerHandler
	Commission *CommissionHandler
	Payouts    *PayoutHandler
	Reports    *ReportHandler
}

// NewRouter assembles the echo instance. The redirect endpoint lives outside
// /api so affiliate links stay short.
func NewRouter(h Handlers, eventsSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/r/:code", h.Tracking.Redirect)

	api := e.Group("/api/v1")

	api.POST("/attribution/click", h.Tracking.TrackClick)

	events := api.Group("/events", InternalOnly(eventsSecret))
	events.POST("/conversion", h.Events.RecordConversion)
	events.POST("/recurring", h.Events.RecordRecurring)

	api.GET("/referrals", h.Events.ListReferrals)
	api.GET("/referrals/:id", h.Events.GetReferral)

	api.POST("/partners", h.Partners.Create)
	api.GET("/partners/:id", h.Partners.Get)
	api.PATCH("/partners/:id/rates", h.Partners.UpdateRates)
	api.DELETE("/partners/:id", h.Partners.Deactivate)
	api.GET("/partners/:id/links", h.Partners.ListLinks)

	api.POST("/links", h.Partners.CreateLink)
	api.DELETE("/links/:id", h.Partners.DeactivateLink)

	api.GET("/commissions", h.Commission.List)
	api.GET("/commissions/:id", h.Commission.Get)
	api.POST("/commissions/:id/approve", h.Commission.Approve)
	api.PATCH("/commissions/:id/amount", h.Commission.UpdateAmount)
	api.DELETE("/commissions/:id", h.Commission.Delete)

	api.POST("/payouts", h.Payouts.Create)
	api.GET("/payouts", h.Payouts.List)
	api.GET("/payouts/:id", h.Payouts.Get)
	api.POST("/payouts/:id/execute", h.Payouts.Execute)
	api.POST("/payouts/:id/mark-paid", h.Payouts.MarkPaid)
	api.POST("/payouts/:id/cancel", h.Payouts.Cancel)

	api.GET("/reports/partners/:id", h.Reports.PartnerSummary)

	return e
}
