package impl

import (
	"context"

	"admission/internal/domain/entity"
	"admission/internal/domain/repository"

	"github.com/pkg/errors"
)

// resolveDuplicate reports which unique field of reg is already taken. Only
// the first matching account is inspected: if it holds the submitted email the
// collision is on the email, otherwise on the username.
//
// The answer is advisory. The store's unique constraints remain the authority.
func resolveDuplicate(ctx context.Context, repo repository.AccountRepository, reg entity.Registration) (entity.DuplicateField, error) {
	existing, err := repo.FindByEmailOrUsername(ctx, reg.Email, reg.Username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return entity.DuplicateNone, nil
	}
	if err != nil {
		return entity.DuplicateNone, errors.Wrap(err, "failed to look up existing account")
	}
	if existing == nil {
		return entity.DuplicateNone, nil
	}

	if existing.Email == reg.Email {
		return entity.DuplicateEmail, nil
	}

	return entity.DuplicateUsername, nil
}
