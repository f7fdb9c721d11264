package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LIFF is an optional middleware. When enabled=true, it requires a LINE UID
// set by the LIFF frontend (header or cookie) and rejects requests without
// one. When enabled=false it passes through (use DevLogin instead).
func LIFF(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-Line-Uid")
			if uid == "" {
				if ck, err := c.Cookie("LINE_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "LIFF required: missing UID"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
