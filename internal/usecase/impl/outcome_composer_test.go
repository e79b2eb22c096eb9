package impl

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"admission/internal/domain/entity"
	domainerrors "admission/internal/domain/errors"
	"admission/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestComposeFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
		logged  bool
	}{
		{
			name:    "validation",
			err:     domainerrors.NewValidationError("email", "Please enter a valid email address"),
			code:    http.StatusBadRequest,
			message: "Please enter a valid email address",
		},
		{
			name:    "wrapped duplicate username",
			err:     errors.Wrap(domainerrors.NewDuplicateIdentityError(entity.DuplicateUsername), "create"),
			code:    http.StatusConflict,
			message: domainerrors.MsgUsernameExists,
		},
		{
			name:    "duplicate email",
			err:     domainerrors.NewDuplicateIdentityError(entity.DuplicateEmail),
			code:    http.StatusConflict,
			message: domainerrors.MsgEmailExists,
		},
		{
			name:    "invalid credentials",
			err:     domainerrors.ErrInvalidCredentials,
			code:    http.StatusUnauthorized,
			message: domainerrors.MsgInvalidCredentials,
		},
		{
			name:    "anything else",
			err:     errors.New("dial tcp: connection refused"),
			code:    http.StatusInternalServerError,
			message: domainerrors.MsgUnexpected,
			logged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			got := composeFailure(context.Background(), logger, flowRegister, tt.err)

			assert.Equal(t, usecase.Outcome{Status: usecase.StatusError, Message: tt.message, Code: tt.code}, got)
			if tt.logged {
				assert.Contains(t, buf.String(), "connection refused")
				assert.NotContains(t, got.Message, "connection refused")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
