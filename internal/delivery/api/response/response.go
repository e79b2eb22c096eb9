// Package response renders the admission envelope for HTTP clients.
package response

import (
	"net/http"

	domainerrors "admission/internal/domain/errors"
	"admission/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every admission response.
type Envelope struct {
	Status  usecase.Status `json:"status"`
	Message string         `json:"message"`
}

// Outcome writes o with its own status code, falling back to 200 for
// successes and 500 for failures that carry none.
func Outcome(c echo.Context, o usecase.Outcome) error {
	code := o.Code
	if code == 0 {
		code = http.StatusOK
		if !o.IsSuccess() {
			code = http.StatusInternalServerError
		}
	}

	return c.JSON(code, Envelope{Status: o.Status, Message: o.Message})
}

// Error writes an ERROR envelope with the given code.
func Error(c echo.Context, code int, message string) error {
	return Outcome(c, usecase.Outcome{Status: usecase.StatusError, Message: message, Code: code})
}

// InvalidBody answers a request whose body could not be decoded.
func InvalidBody(c echo.Context) error {
	return Error(c, domainerrors.ErrInvalidRequestBody.HTTPCode(), domainerrors.ErrInvalidRequestBody.Message())
}

// HandleAppError renders a domain AppError as an envelope. Only the
// caller-facing message is exposed.
func HandleAppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.Message())
}
