package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"admission/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunRepository builds statements without a server and captures the
// rendered SQL through the query logger.
func newDryRunRepository(t *testing.T) (*bytes.Buffer, *accountRepository) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=admission dbname=admission sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(base, true),
	})
	require.NoError(t, err)

	return &buf, &accountRepository{db: db}
}

func TestAccountRepository_FindByEmailOrUsernamePrefersEmail(t *testing.T) {
	buf, repo := newDryRunRepository(t)

	_, err := repo.FindByEmailOrUsername(context.Background(), "jo@example.com", "jo_1")
	require.NoError(t, err)

	sql := buf.String()
	assert.Contains(t, sql, "WHERE email = $1 OR username = $2")
	assert.Contains(t, sql, "ORDER BY CASE WHEN email = $3 THEN 0 ELSE 1 END")
	assert.Contains(t, sql, "LIMIT $4")
	assert.NotContains(t, sql, "jo@example.com")
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	buf, repo := newDryRunRepository(t)

	_, err := repo.FindByEmail(context.Background(), "jo@example.com")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "WHERE email = $1")
	assert.NotContains(t, buf.String(), "ORDER BY")
}

func TestAccountRepository_CreateAssignsID(t *testing.T) {
	buf, repo := newDryRunRepository(t)

	account := &entity.Account{
		Name:         "Jo",
		Username:     "jo_1",
		Email:        "jo@example.com",
		PasswordHash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",
		Role:         entity.RoleApplicant,
	}
	require.NoError(t, repo.Create(context.Background(), account))

	assert.NotZero(t, account.ID)
	assert.Contains(t, buf.String(), "INSERT INTO")
	assert.NotContains(t, buf.String(), "argon2id")
}
