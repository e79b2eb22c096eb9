package auth

import (
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"admission/config"
	domainerrors "admission/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the suite fast; production defaults are exercised once.
var testParams = Argon2Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestArgon2Hasher_Hash(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, Argon2Prefix))
	assert.Contains(t, hash, "$v=19$m=8192,t=1,p=1$")

	assert.True(t, hasher.Verify(hash, password))
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)

	first, err := hasher.Hash("Abcdefg1")
	require.NoError(t, err)
	second, err := hasher.Hash("Abcdefg1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "Abcdefg1"))
	assert.True(t, hasher.Verify(second, "Abcdefg1"))
}

func TestArgon2Hasher_Verify(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Verify(hash, password))
	assert.False(t, hasher.Verify(hash, "StrongPass124"))
	assert.False(t, hasher.Verify(hash, ""))
	assert.False(t, hasher.Verify(hash, password+" "))
}

func TestArgon2Hasher_CompareClassifiesFailures(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)

	hash, err := hasher.Hash("Abcdefg1")
	require.NoError(t, err)

	assert.NoError(t, hasher.Compare(hash, "Abcdefg1"))
	assert.True(t, errors.Is(hasher.Compare(hash, "Abcdefg2"), domainerrors.ErrSecretMismatch))
	assert.True(t, errors.Is(hasher.Compare("", "Abcdefg1"), domainerrors.ErrMalformedSecret))
	assert.True(t, errors.Is(hasher.Compare("Abcdefg1", "Abcdefg1"), domainerrors.ErrMalformedSecret))
}

func TestArgon2Hasher_VerifyRejectsMalformedStoredValues(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)

	malformed := []string{
		"",
		"Abcdefg1", // legacy plaintext
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // bcrypt
		"$argon2id$",
		"$argon2id$v=19$m=8192,t=1,p=1$",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8192,t=1,p=0$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0$",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
	}

	for _, stored := range malformed {
		t.Run(stored, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Verify(stored, "Abcdefg1"))
			})
			assert.True(t, errors.Is(hasher.Compare(stored, "Abcdefg1"), domainerrors.ErrMalformedSecret))
		})
	}
}

func TestArgon2Hasher_VerifyRandomBytes(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)

	for range 50 {
		buf := make([]byte, 64)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			assert.False(t, hasher.Verify(string(buf), "Abcdefg1"))
			assert.False(t, hasher.Verify(Argon2Prefix+string(buf), "Abcdefg1"))
		})
	}
}

func TestArgon2Hasher_VerifiesHashesFromOtherParameters(t *testing.T) {
	old := NewArgon2HasherWithParams(testParams)
	hash, err := old.Hash("Abcdefg1")
	require.NoError(t, err)

	upgraded := testParams
	upgraded.Iterations = 2
	current := NewArgon2HasherWithParams(upgraded)

	assert.True(t, current.Verify(hash, "Abcdefg1"))
	assert.True(t, current.NeedsRehash(hash))
	assert.False(t, old.NeedsRehash(hash))
	assert.True(t, current.NeedsRehash("plaintext"))
}

func TestNewArgon2Hasher_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Argon2: &config.Argon2Config{
				Memory:      8 * 1024,
				Iterations:  1,
				Parallelism: 1,
			},
		},
	}
	hasher := NewArgon2Hasher(cfg)

	hash, err := hasher.Hash("Abcdefg1")
	require.NoError(t, err)
	assert.Contains(t, hash, "$m=8192,t=1,p=1$")
	assert.False(t, hasher.NeedsRehash(hash))
}

func TestNewArgon2Hasher_Defaults(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	hash, err := hasher.Hash("Abcdefg1")
	require.NoError(t, err)
	assert.Contains(t, hash, "$m=65536,t=3,p=2$")
	assert.True(t, hasher.Verify(hash, "Abcdefg1"))
}

func TestArgon2Hasher_RejectsCostBeyondConfiguredLimits(t *testing.T) {
	hasher := NewArgon2HasherWithParams(testParams)

	costly := []string{
		"$argon2id$v=19$m=1048576,t=64,p=255$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=32769,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8192,t=17,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
		"$argon2id$v=19$m=8192,t=1,p=17$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5",
	}

	for _, stored := range costly {
		t.Run(stored, func(t *testing.T) {
			start := time.Now()
			assert.False(t, hasher.Verify(stored, "Abcdefg1"))
			assert.Less(t, time.Since(start), 100*time.Millisecond)
			assert.True(t, errors.Is(hasher.Compare(stored, "Abcdefg1"), domainerrors.ErrMalformedSecret))
			assert.True(t, hasher.NeedsRehash(stored))
		})
	}
}

func TestLimitsFor(t *testing.T) {
	limits := limitsFor(testParams)
	assert.Equal(t, uint32(4*8192), limits.memory)
	assert.Equal(t, uint32(16), limits.iterations)
	assert.Equal(t, uint8(16), limits.parallelism)

	limits = limitsFor(Argon2Params{Memory: 1 << 31, Iterations: 20, Parallelism: 32})
	assert.Equal(t, uint32(1<<31), limits.memory)
	assert.Equal(t, uint32(20), limits.iterations)
	assert.Equal(t, uint8(32), limits.parallelism)
}
