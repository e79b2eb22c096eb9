package impl

import (
	"context"
	"log/slog"
	"net/http"

	domainerrors "admission/internal/domain/errors"
	"admission/internal/errors"
	"admission/internal/usecase"
)

func succeeded(code int, message string) usecase.Outcome {
	return usecase.Outcome{Status: usecase.StatusSuccess, Message: message, Code: code}
}

func failed(code int, message string) usecase.Outcome {
	return usecase.Outcome{Status: usecase.StatusError, Message: message, Code: code}
}

// composeFailure turns err into the caller-facing outcome. Validation,
// duplicate and credential errors keep their own message; everything else is
// logged with its cause and answered with the generic message.
func composeFailure(ctx context.Context, logger *slog.Logger, flow string, err error) usecase.Outcome {
	if verr, ok := errors.Find[*domainerrors.ValidationError](err); ok {
		return failed(verr.HTTPCode(), verr.Message())
	}

	if dup, ok := errors.Find[*domainerrors.DuplicateIdentityError](err); ok {
		return failed(dup.HTTPCode(), dup.Message())
	}

	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return failed(domainerrors.ErrInvalidCredentials.HTTPCode(), domainerrors.ErrInvalidCredentials.Message())
	}

	logger.LogAttrs(ctx, slog.LevelError, "Admission flow failed",
		slog.String("flow", flow),
		slog.Any("error", err),
	)

	return failed(http.StatusInternalServerError, domainerrors.MsgUnexpected)
}
