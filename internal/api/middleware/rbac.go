package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// RequireRole enforces an exact role match. There is no role hierarchy.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if identity.Role != role {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
