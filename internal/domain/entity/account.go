// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the stored identity record. Email and Username are each unique
// across all accounts, and only the hashed secret is ever persisted.
type Account struct {
	ID           uuid.UUID // Assigned by the repository on insert.
	Name         string    // Display name.
	Username     string    // The handle, unique across accounts.
	Email        string    // Lowercased login identifier, unique across accounts.
	PasswordHash string    // Argon2id PHC string.
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Registration is the sanitized result of validating a sign-up submission.
// Password is plaintext and must not outlive the request.
type Registration struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     Role
}

// Credentials is the sanitized result of validating a login submission.
type Credentials struct {
	Email    string
	Password string
}

// DuplicateField names the unique attribute a registration collided on.
type DuplicateField string

const (
	DuplicateNone     DuplicateField = ""
	DuplicateEmail    DuplicateField = "email"
	DuplicateUsername DuplicateField = "userName"
)
