package httpapi

import (
	"errors"
	"net/http"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// httpError translates domain sentinel errors into transport codes. The
// mapping is the only place the delivery layer interprets errors; usecases
// never know about HTTP.
func httpError(err error) *echo.HTTPError {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrValidation), errors.As(err, &validationErrors):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCodeTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPartnerInactive), errors.Is(err, domain.ErrLinkInactive):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrCommissionLocked),
		errors.Is(err, domain.ErrCommissionPaid),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNoEligibleCommissions),
		errors.Is(err, domain.ErrPayoutNotPending),
		errors.Is(err, domain.ErrPayoutAlreadyPaid):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNoTransferDestination), errors.Is(err, domain.ErrTransferFailed):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
