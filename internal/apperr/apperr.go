// Package apperr defines the API error taxonomy and maps it onto HTTP
// responses at the request boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Error is a request-level failure with a fixed HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation reports malformed or missing input fields. The messages are
// joined into one human-readable list.
func Validation(messages ...string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: strings.Join(messages, ", ")}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate unique key. Surfaced as 400 to match the
// original API contract rather than 409.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Handler returns the echo error handler implementing the taxonomy. It is the
// single catch point; handlers just return errors. Anything unrecognized
// becomes a 500, with the underlying message exposed only outside production.
func Handler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := echo.Map{"message": "Something went wrong!"}

		var apiErr *Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &apiErr):
			status = apiErr.Status
			body = echo.Map{"message": apiErr.Message}
		case errors.As(err, &httpErr):
			status = httpErr.Code
			body = echo.Map{"message": fmt.Sprintf("%v", httpErr.Message)}
		default:
			if !production {
				body["error"] = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
