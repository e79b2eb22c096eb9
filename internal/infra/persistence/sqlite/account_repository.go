package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"admission/internal/domain/entity"
	domainerrors "admission/internal/domain/errors"
	"admission/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const accountColumns = `id, name, username, email, password_hash, role, created_at, updated_at`

// AccountRepository implements repository.AccountRepository on SQLite.
type AccountRepository struct {
	db *sql.DB
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// FindByEmailOrUsername returns the first account matching either value,
// preferring the one that holds the email.
func (r *AccountRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+`
FROM accounts
WHERE email = ?1 OR username = ?2
ORDER BY CASE WHEN email = ?1 THEN 0 ELSE 1 END
LIMIT 1`, email, username)

	account, err := scanAccount(row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email or username")
	}

	return account, nil
}

// FindByEmail retrieves a single account by its email address.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)

	account, err := scanAccount(row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

// Create inserts account, assigning an ID and timestamps when they are unset.
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = account.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `INSERT INTO accounts (`+accountColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		account.ID.String(),
		account.Name,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Role.String(),
		toMillis(account.CreatedAt),
		toMillis(account.UpdatedAt),
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return errors.WithStack(domainerrors.NewDuplicateIdentityError(field))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = fromMillis(toMillis(account.CreatedAt))
	account.UpdatedAt = fromMillis(toMillis(account.UpdatedAt))

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var (
		id        string
		role      string
		createdAt int64
		updatedAt int64
		account   entity.Account
	)

	err := row.Scan(&id, &account.Name, &account.Username, &account.Email, &account.PasswordHash, &role, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, err
	}

	account.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "stored account id %q", id)
	}
	account.Role = entity.Role(role)
	account.CreatedAt = fromMillis(createdAt)
	account.UpdatedAt = fromMillis(updatedAt)

	return &account, nil
}

// uniqueViolationField reports whether err is a UNIQUE failure and which
// account column it hit. SQLite names the columns, not the constraint.
func uniqueViolationField(err error) (entity.DuplicateField, bool) {
	var sqliteErr *msqlite.Error
	isUnique := errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE

	message := strings.ToLower(err.Error())
	if !isUnique && !strings.Contains(message, "unique constraint failed") {
		return entity.DuplicateNone, false
	}

	switch {
	case strings.Contains(message, "accounts.email"):
		return entity.DuplicateEmail, true
	case strings.Contains(message, "accounts.username"):
		return entity.DuplicateUsername, true
	default:
		return entity.DuplicateNone, true
	}
}
