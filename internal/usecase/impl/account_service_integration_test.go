package impl

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"admission/internal/domain/entity"
	domainerrors "admission/internal/domain/errors"
	"admission/internal/infra/auth"
	"admission/internal/infra/persistence/sqlite"
	"admission/internal/usecase"
	"admission/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteAccountService(t *testing.T) (usecase.AccountUsecase, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hasher := auth.NewArgon2HasherWithParams(auth.Argon2Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})

	return NewAccountService(AccountServiceParams{
		AccountRepo: store.Accounts(),
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	}), store
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, store := newSQLiteAccountService(t)

	got := svc.Register(ctx, registrationSubmission())
	assertOutcome(t, got, usecase.StatusSuccess, http.StatusCreated, domainerrors.MsgRegistrationCompleted)

	account, err := store.Accounts().FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleApplicant, account.Role)
	assert.NotEqual(t, "Abcdefg1", account.PasswordHash)
	assert.Contains(t, account.PasswordHash, auth.Argon2Prefix)

	got = svc.Login(ctx, validation.Submission{"email": "A@B.COM ", "password": "Abcdefg1"})
	assertOutcome(t, got, usecase.StatusSuccess, http.StatusOK, domainerrors.MsgLoginSuccessful)

	got = svc.Login(ctx, validation.Submission{"email": "a@b.com", "password": "Abcdefg2"})
	assertOutcome(t, got, usecase.StatusError, http.StatusUnauthorized, domainerrors.MsgInvalidCredentials)
}

func TestAccountService_RegisterDuplicatesAgainstStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSQLiteAccountService(t)

	require.True(t, svc.Register(ctx, registrationSubmission()).IsSuccess())

	sameEmail := registrationSubmission()
	sameEmail["userName"] = "different"
	assertOutcome(t, svc.Register(ctx, sameEmail), usecase.StatusError, http.StatusConflict, domainerrors.MsgEmailExists)

	sameUsername := registrationSubmission()
	sameUsername["email"] = "other@b.com"
	assertOutcome(t, svc.Register(ctx, sameUsername), usecase.StatusError, http.StatusConflict, domainerrors.MsgUsernameExists)
}

func TestAccountService_LoginWithLegacyPlaintextHash(t *testing.T) {
	ctx := context.Background()
	svc, store := newSQLiteAccountService(t)

	require.NoError(t, store.Accounts().Create(ctx, &entity.Account{
		Name:         "Legacy",
		Username:     "legacy",
		Email:        "legacy@example.com",
		PasswordHash: "Abcdefg1",
		Role:         entity.RoleEmployer,
	}))

	got := svc.Login(ctx, validation.Submission{"email": "legacy@example.com", "password": "Abcdefg1"})
	assertOutcome(t, got, usecase.StatusError, http.StatusUnauthorized, domainerrors.MsgInvalidCredentials)
}
