package persistence

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"admission/config"
	"admission/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewAccountRepository_SQLite(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{Storage: &config.StorageConfig{Driver: config.StorageDriverSQLite}}
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "accounts.db")

	repo, err := NewAccountRepository(Params{Lifecycle: lc, Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Account{
		Name:         "Jo",
		Username:     "jo_1",
		Email:        "jo@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleApplicant,
	}))

	found, err := repo.FindByEmailOrUsername(ctx, "jo@example.com", "someone")
	require.NoError(t, err)
	assert.Equal(t, "jo_1", found.Username)
}

func TestNewAccountRepository_PostgresRequiresConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{Driver: config.StorageDriverPostgres}}

	_, err := NewAccountRepository(Params{Lifecycle: lc, Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}

func TestNewAccountRepository_UnknownDriver(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{Driver: "mongo"}}

	_, err := NewAccountRepository(Params{Lifecycle: lc, Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}
