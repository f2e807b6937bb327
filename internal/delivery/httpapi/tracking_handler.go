package httpapi

import (
	"net/http"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/usecase"
	attributiondto "github.com/47industries/affiliate-service/internal/usecase/dto/attribution"
	"github.com/labstack/echo/v4"
)

const (
	codeCookie    = "affiliate_code"
	sessionCookie = "affiliate_session"
	// mirrorCookie is readable from the storefront's checkout javascript.
	mirrorCookie = "affiliate_code_js"
)

// TrackingHandler is the visitor-facing surface. It must never fail toward
// the browser: a broken code still redirects, it just doesn't track.
type TrackingHandler struct {
	attribution    usecase.AttributionUsecase
	shopBaseURL    string
	motorevBaseURL string
}

func NewTrackingHandler(attribution usecase.AttributionUsecase, shopBaseURL, motorevBaseURL string) *TrackingHandler {
	return &TrackingHandler{
		attribution:    attribution,
		shopBaseURL:    shopBaseURL,
		motorevBaseURL: motorevBaseURL,
	}
}

// Redirect handles GET /r/:code. On a tracked click the attribution cookies
// are overwritten with a fresh 30-day expiry (last-touch); on a swallowed
// click the visitor is sent to the storefront untouched.
func (h *TrackingHandler) Redirect(c echo.Context) error {
	result, err := h.attribution.RecordClick(&attributiondto.RecordClickInput{
		Code:      c.Param("code"),
		SessionID: h.existingSession(c),
		Visitor:   visitorMeta(c),
	})
	if err != nil {
		return c.Redirect(http.StatusFound, h.shopBaseURL)
	}

	if !result.Tracked {
		return c.Redirect(http.StatusFound, h.shopBaseURL)
	}

	h.writeCookies(c, result.Code, result.SessionID)

	target := result.Target
	if target == "" {
		if result.Platform == domain.PlatformMotorev {
			target = h.motorevBaseURL
		} else {
			target = h.shopBaseURL
		}
	}
	return c.Redirect(http.StatusFound, target)
}

type trackClickRequest struct {
	Code      string `json:"code" validate:"required"`
	SessionID string `json:"session_id"`
}

type trackClickResponse struct {
	Tracked   bool   `json:"tracked"`
	SessionID string `json:"session_id,omitempty"`
	Code      string `json:"code,omitempty"`
}

// TrackClick handles POST /api/v1/attribution/click, the JSON variant used
// by single-page flows that cannot go through the redirect.
func (h *TrackingHandler) TrackClick(c echo.Context) error {
	var req trackClickRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.existingSession(c)
	}

	result, err := h.attribution.RecordClick(&attributiondto.RecordClickInput{
		Code:      req.Code,
		SessionID: sessionID,
		Visitor:   visitorMeta(c),
	})
	if err != nil {
		return httpError(err)
	}

	if result.Tracked {
		h.writeCookies(c, result.Code, result.SessionID)
	}

	return c.JSON(http.StatusOK, trackClickResponse{
		Tracked:   result.Tracked,
		SessionID: result.SessionID,
		Code:      result.Code,
	})
}

func (h *TrackingHandler) existingSession(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// writeCookies overwrites the full cookie set with a fixed expiry counted
// from this click. Expiry is never extended in place.
func (h *TrackingHandler) writeCookies(c echo.Context, code, sessionID string) {
	expires := time.Now().Add(usecase.AttributionTTL)

	c.SetCookie(&http.Cookie{
		Name:     codeCookie,
		Value:    code,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     mirrorCookie,
		Value:    code,
		Path:     "/",
		Expires:  expires,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

func visitorMeta(c echo.Context) domain.VisitorMeta {
	return domain.VisitorMeta{
		Referrer:  c.Request().Referer(),
		UserAgent: c.Request().UserAgent(),
		IP:        c.RealIP(),
	}
}
