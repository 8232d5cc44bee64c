package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qalab/employee-directory/internal/api/middleware"
	"github.com/qalab/employee-directory/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login checks credentials and opens a session.
//
// @Summary      Login
// @Description  Sets an HttpOnly "session" cookie. With remember=true the cookie persists for the long session lifetime; otherwise it is a browser-session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	// Bodies that are not JSON or form data carry no credentials.
	var req loginRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil && !errors.Is(err, echo.ErrUnsupportedMediaType) {
		return errInvalidPayload
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, req.Remember)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    res.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if res.Remember {
		cookie.MaxAge = int(res.TTL / time.Second)
		cookie.Expires = time.Now().Add(res.TTL)
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, loginResponse{
		OK:       true,
		Role:     res.Identity.Role,
		Username: res.Identity.Username,
	})
}

// Logout ends the caller's session, if any, and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  okResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Me returns the identity bound to the session cookie.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Username: identity.Username, Role: identity.Role})
}
