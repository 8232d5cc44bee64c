package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// RequireAuthenticated rejects requests without an attached identity.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
