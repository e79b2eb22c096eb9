// Package middleware holds echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"admission/internal/delivery/api/response"
	deliverycontext "admission/internal/delivery/context"
	domainerrors "admission/internal/domain/errors"
	"admission/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Every error leaves as an ERROR
// envelope; unknown causes are logged and replaced by the generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err, slog.String("errorCode", appErr.ErrorCode()))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		_ = response.Error(c, httpErr.Code, httpErrorMessage(httpErr))

		return
	}

	m.logUnhandled(c, err)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.MsgUnexpected)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error, extra ...slog.Attr) {
	ctx := c.Request().Context()
	attrs := append([]slog.Attr{
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}, extra...)
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, slog.LevelError, "Unhandled error", attrs...)
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if httpErr.Code >= http.StatusInternalServerError {
		return domainerrors.MsgUnexpected
	}
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
