package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

const identityKey = "identity"

// AttachIdentity resolves the session cookie on every request and stores the
// caller identity on the context. Requests without a live session pass
// through untouched; the route decides whether that is acceptable.
func AttachIdentity(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := auth.Identify(c.Request().Context(), cookie.Value)
			if err != nil {
				log.Warn().Err(err).Str("path", c.Request().URL.Path).Msg("session lookup failed")
				return next(c)
			}
			if identity != nil {
				SetIdentity(c, *identity)
			}
			return next(c)
		}
	}
}

// SetIdentity stores identity on the request context.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the identity attached by AttachIdentity.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
