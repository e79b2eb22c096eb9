// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"admission/internal/domain/entity"
)

// ErrAccountNotFound is returned when no stored account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the storage collaborator used by the admission flows.
// Implementations must back Email and Username with unique constraints; a
// violation on Create is reported as *domainerrors.DuplicateIdentityError with
// the field set when the store can tell which constraint fired, and
// entity.DuplicateNone when it cannot.
type AccountRepository interface {
	// FindByEmailOrUsername returns the first account whose email equals email
	// or whose username equals username. An account holding the email comes first.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Account, error)

	// FindByEmail returns the account registered under email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts a new account, filling in ID and timestamps.
	Create(ctx context.Context, account *entity.Account) error
}
