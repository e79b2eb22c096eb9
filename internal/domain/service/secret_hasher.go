// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher performs the one-way transformation and one-way check of
// account secrets.
type SecretHasher interface {
	// Hash produces a salted, self-describing hash of plaintext. Two calls with
	// the same plaintext never return the same string.
	Hash(plaintext string) (string, error)

	// Compare checks plaintext against stored. It returns nil on a match,
	// domainerrors.ErrMalformedSecret when stored is empty or not a hash this
	// hasher understands, and domainerrors.ErrSecretMismatch otherwise.
	Compare(stored, plaintext string) error

	// Verify reports whether plaintext matches stored. It never panics and
	// never returns true for a malformed stored value.
	Verify(stored, plaintext string) bool

	// NeedsRehash reports whether stored was produced with parameters other
	// than the hasher's current ones.
	NeedsRehash(stored string) bool
}
