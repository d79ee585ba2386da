package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweettreats/storefront/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success   bool   `json:"success"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps storefront error kinds to HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope:
//     {"success": false, "error_kind": "<kind>", "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindInvalidCredentials: http.StatusUnauthorized,
	domain.KindDuplicateUsername:  http.StatusConflict,
	domain.KindMissingField:       http.StatusBadRequest,
	domain.KindInvalidPrice:       http.StatusBadRequest,
	domain.KindIncompletePayment:  http.StatusUnprocessableEntity,
	domain.KindAccessDenied:       http.StatusForbidden,
	domain.KindItemNotFound:       http.StatusNotFound,
	domain.KindEmptyCartCheckout:  http.StatusConflict,
	domain.KindInvalidTransition:  http.StatusConflict,
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Storefront rejections carry their kind; the message is the short
	// user-facing one, not the wrapped chain.
	var de *domain.Error
	if errors.As(err, &de) {
		code, ok := kindStatus[de.Kind]
		if !ok {
			code = http.StatusBadRequest
		}
		return code, errorResponse{ErrorKind: string(de.Kind), Error: de.Message}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
