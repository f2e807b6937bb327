package httpapi

import (
	"net/http"

	"github.com/47industries/affiliate-service/internal/usecase"
	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	reports usecase.ReportUsecase
}

func NewReportHandler(reports usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// PartnerSummary handles GET /api/v1/reports/partners/:id.
func (h *ReportHandler) PartnerSummary(c echo.Context) error {
	summary, err := h.reports.GetPartnerSummary(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
