package httpapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const internalTokenHeader = "X-Internal-Token"

// InternalOnly guards the event webhook endpoints: only sibling services
// holding the shared secret may record conversions.
func InternalOnly(sharedSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(internalTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(sharedSecret)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid internal token")
			}
			return next(c)
		}
	}
}
