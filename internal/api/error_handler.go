package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// statusClientClosedRequest is logged when the caller goes away mid-request.
const statusClientClosedRequest = 499

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and client messages.
//   - Answers unmatched routes with a plain-text 404.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if isRouteMiss(err) {
			_ = c.String(http.StatusNotFound, "Not Found")
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

// isRouteMiss reports echo's own 404/405, raised when no route or static
// file matches.
func isRouteMiss(err error) bool {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return false
	}
	return he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: "Validation failed", Fields: ve.Fields}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Error: "Unauthorized"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "Forbidden"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"}
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, errorResponse{Error: "Not found"}
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict, errorResponse{Error: "Employee ID already exists"}
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, errorResponse{Error: "Email already exists"}
	case errors.Is(err, domain.ErrBulkIDsRequired):
		return http.StatusBadRequest, errorResponse{Error: "ids must be a non-empty array"}
	case errors.Is(err, domain.ErrBulkInvalidStatus):
		return http.StatusBadRequest, errorResponse{Error: "Invalid status"}
	case errors.Is(err, domain.ErrBulkInvalidAction):
		return http.StatusBadRequest, errorResponse{Error: "Invalid bulk action"}
	case errors.Is(err, domain.ErrSimulatedFailure):
		return http.StatusServiceUnavailable, errorResponse{Error: "Simulated failure"}
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, errorResponse{Error: "client closed request"}
	}

	// Echo's own errors (bind failures, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
