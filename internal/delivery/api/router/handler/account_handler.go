// Package handler contains the echo handlers of the API server.
package handler

import (
	"context"
	"log/slog"

	"admission/internal/delivery/api/response"
	deliverycontext "admission/internal/delivery/context"
	"admission/internal/usecase"
	"admission/internal/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler exposes registration and login over HTTP.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Register handles POST /auth/register.
func (h *AccountHandler) Register(c echo.Context) error {
	return h.admit(c, h.accountUC.Register)
}

// Signup handles POST /auth/signup, the variant that requires confirmPassword.
func (h *AccountHandler) Signup(c echo.Context) error {
	return h.admit(c, h.accountUC.RegisterConfirmed)
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(c echo.Context) error {
	return h.admit(c, h.accountUC.Login)
}

type admissionFlow func(ctx context.Context, sub validation.Submission) usecase.Outcome

func (h *AccountHandler) admit(c echo.Context, flow admissionFlow) error {
	sub, err := bindSubmission(c)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Rejected request body", slog.Any("error", err))

		return response.InvalidBody(c)
	}

	return response.Outcome(c, flow(c.Request().Context(), sub))
}

// bindSubmission decodes the body as a flat JSON object. Values keep their
// JSON types so the validator can reject non-strings. An empty body is an
// empty submission.
func bindSubmission(c echo.Context) (validation.Submission, error) {
	sub := validation.Submission{}
	if err := c.Bind(&sub); err != nil {
		return nil, err
	}
	if sub == nil {
		sub = validation.Submission{}
	}

	return sub, nil
}
