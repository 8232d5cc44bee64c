package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qalab/employee-directory/internal/api/middleware"
	"github.com/qalab/employee-directory/internal/core/domain"
)

// errInvalidPayload is returned when a request body cannot be decoded.
var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "invalid payload")

// ctxIdentity returns the caller attached by the session middleware. Routes
// behind RequireAuthenticated always have one; the check keeps handlers safe
// when mounted without it.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

// sessionToken returns the raw session cookie value, or "" when absent.
func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
