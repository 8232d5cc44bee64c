package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SingleSegment answers echo's 404 when the named path param spans more
// than one segment. Echo lets a trailing param swallow the rest of the
// path, so /api/employees/E1001/extra would otherwise reach the handler.
func SingleSegment(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.Contains(c.Param(param), "/") {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}
