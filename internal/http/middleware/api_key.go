package middleware

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v4"
)

const ctxAPIKey = "api_key"

// APIKeyFromCtx extracts the key accepted by APIKeyMiddleware.
func APIKeyFromCtx(c echo.Context) (string, bool) {
	key, ok := c.Get(ctxAPIKey).(string)
	return key, ok && key != ""
}

// APIKeyMiddleware authenticates requests using X-API-Key header against a static key set.
// An empty set disables the check (local development).
func APIKeyMiddleware(keys []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			allowed[k] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			key := strings.TrimSpace(c.Request().Header.Get("X-API-Key"))
			if key == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing api key"})
			}
			if _, ok := allowed[key]; !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
			}
			c.Set(ctxAPIKey, key)
			return next(c)
		}
	}
}
