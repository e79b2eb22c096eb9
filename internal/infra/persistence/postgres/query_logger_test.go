package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedQueryLogger(debug bool) (*bytes.Buffer, gormlogger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &buf, newQueryLogger(base, debug)
}

func statement(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestQueryLogger_ParamsFilterDropsValues(t *testing.T) {
	_, l := newBufferedQueryLogger(true)
	filter, ok := l.(interface {
		ParamsFilter(ctx context.Context, sql string, params ...any) (string, []any)
	})
	if !assert.True(t, ok) {
		return
	}

	sql, vars := filter.ParamsFilter(context.Background(), "INSERT INTO accounts VALUES ($1)", "$argon2id$secret")
	assert.Equal(t, "INSERT INTO accounts VALUES ($1)", sql)
	assert.Nil(t, vars)
}

func TestQueryLogger_Trace(t *testing.T) {
	ctx := context.Background()
	begin := time.Now()

	t.Run("record not found is silent", func(t *testing.T) {
		buf, l := newBufferedQueryLogger(true)
		l.Trace(ctx, begin, statement("SELECT"), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("unique violation is not an error", func(t *testing.T) {
		buf, l := newBufferedQueryLogger(false)
		dup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: accountsEmailKey}
		l.Trace(ctx, begin, statement("INSERT"), errors.Wrap(dup, "insert"))
		assert.Empty(t, buf.String())

		buf, l = newBufferedQueryLogger(true)
		l.Trace(ctx, begin, statement("INSERT"), dup)
		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
		assert.Contains(t, buf.String(), "unique constraint")
	})

	t.Run("other failures are errors", func(t *testing.T) {
		buf, l := newBufferedQueryLogger(false)
		l.Trace(ctx, begin, statement("INSERT INTO accounts"), errors.New("connection reset"))
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "connection reset")
		assert.Contains(t, buf.String(), "INSERT INTO accounts")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		buf, l := newBufferedQueryLogger(false)
		l.Trace(ctx, begin.Add(-time.Second), statement("SELECT"), nil)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		buf, l := newBufferedQueryLogger(false)
		l.Trace(ctx, begin, statement("SELECT"), nil)
		assert.Empty(t, buf.String())

		buf, l = newBufferedQueryLogger(true)
		l.Trace(ctx, begin, statement("SELECT"), nil)
		assert.Contains(t, buf.String(), "account query")
	})

	t.Run("silent mode", func(t *testing.T) {
		buf, l := newBufferedQueryLogger(true)
		l.LogMode(gormlogger.Silent).Trace(ctx, begin, statement("SELECT"), errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
