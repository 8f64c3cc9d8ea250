package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKey guards internal routes with the shared operator key, accepted via
// the x-api-key header or a key query parameter. CORS preflights pass
// through unauthenticated.
func APIKey(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			key := c.Request().Header.Get("x-api-key")
			if key == "" {
				key = c.QueryParam("key")
			}

			if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "unauthorised — invalid or missing API key",
				})
			}
			return next(c)
		}
	}
}
