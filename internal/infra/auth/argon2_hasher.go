// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"admission/config"
	domainerrors "admission/internal/domain/errors"
	"admission/internal/domain/service"
	"admission/internal/errors"

	"golang.org/x/crypto/argon2"
)

// Argon2Prefix starts every hash produced by argon2Hasher. Stored values
// without it are rejected before any parsing happens.
const Argon2Prefix = "$argon2id$"

// Default Argon2id parameters (version 19). Memory is in KiB.
const (
	DefaultArgon2Memory      uint32 = 64 * 1024
	DefaultArgon2Iterations  uint32 = 3
	DefaultArgon2Parallelism uint8  = 2
	DefaultArgon2SaltLength  uint32 = 16
	DefaultArgon2KeyLength   uint32 = 32
)

// A stored hash is only verified when its cost stays near the configured
// one: memory up to argon2MemoryHeadroom times the configured memory, and
// iterations and parallelism up to the larger of the floor and the configured value.
const (
	argon2MemoryHeadroom   uint32 = 4
	argon2IterationsFloor  uint32 = 16
	argon2ParallelismFloor uint8  = 16
	maxArgon2KeyLength     int    = 1024
)

type decodeLimits struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

func limitsFor(p Argon2Params) decodeLimits {
	limits := decodeLimits{
		memory:      p.Memory * argon2MemoryHeadroom,
		iterations:  max(argon2IterationsFloor, p.Iterations),
		parallelism: max(argon2ParallelismFloor, p.Parallelism),
	}
	if limits.memory < p.Memory {
		limits.memory = p.Memory
	}

	return limits
}

// Argon2Params captures the tunable parameters of the Argon2id algorithm.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns the parameters used when nothing is configured.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      DefaultArgon2Memory,
		Iterations:  DefaultArgon2Iterations,
		Parallelism: DefaultArgon2Parallelism,
		SaltLength:  DefaultArgon2SaltLength,
		KeyLength:   DefaultArgon2KeyLength,
	}
}

// argon2Hasher is a concrete implementation of the SecretHasher interface using Argon2id.
type argon2Hasher struct {
	params Argon2Params
	limits decodeLimits
}

// NewArgon2Hasher is the constructor injected by Fx. Zero-valued settings in
// cfg.Auth.Argon2 fall back to the defaults.
func NewArgon2Hasher(cfg *config.Config) service.SecretHasher {
	params := DefaultArgon2Params()
	if cfg != nil && cfg.Auth != nil && cfg.Auth.Argon2 != nil {
		a := cfg.Auth.Argon2
		if a.Memory > 0 {
			params.Memory = a.Memory
		}
		if a.Iterations > 0 {
			params.Iterations = a.Iterations
		}
		if a.Parallelism > 0 {
			params.Parallelism = a.Parallelism
		}
		if a.SaltLength > 0 {
			params.SaltLength = a.SaltLength
		}
		if a.KeyLength > 0 {
			params.KeyLength = a.KeyLength
		}
	}

	return NewArgon2HasherWithParams(params)
}

// NewArgon2HasherWithParams creates a hasher with explicit parameters.
func NewArgon2HasherWithParams(params Argon2Params) service.SecretHasher {
	return &argon2Hasher{params: params, limits: limitsFor(params)}
}

// Hash derives an Argon2id key from plaintext with a fresh random salt and
// encodes it in PHC string format.
func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return encodeHash(h.params, salt, key), nil
}

// Compare checks plaintext against stored. Stored values that are empty or
// lack the Argon2id prefix are rejected without being parsed.
func (h *argon2Hasher) Compare(stored, plaintext string) (err error) {
	if stored == "" || !strings.HasPrefix(stored, Argon2Prefix) {
		return domainerrors.ErrMalformedSecret
	}

	defer func() {
		if r := recover(); r != nil {
			err = domainerrors.ErrMalformedSecret
		}
	}()

	params, salt, key, err := decodeHash(stored, h.limits)
	if err != nil {
		return errors.Wrap(domainerrors.ErrMalformedSecret, err.Error())
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return domainerrors.ErrSecretMismatch
	}

	return nil
}

// Verify reports whether plaintext matches stored.
func (h *argon2Hasher) Verify(stored, plaintext string) bool {
	return h.Compare(stored, plaintext) == nil
}

// NeedsRehash reports whether stored is unusable or was produced with
// parameters other than the current ones.
func (h *argon2Hasher) NeedsRehash(stored string) bool {
	if !strings.HasPrefix(stored, Argon2Prefix) {
		return true
	}

	params, salt, _, err := decodeHash(stored, h.limits)
	if err != nil {
		return true
	}
	params.SaltLength = uint32(len(salt))

	return params != h.params
}

func encodeHash(p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		Argon2Prefix,
		argon2.Version,
		p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string, limits decodeLimits) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return p, nil, nil, errors.Errorf("expected 6 hash segments, got %d", len(parts))
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, errors.Wrap(err, "parse version")
	}
	if version != argon2.Version {
		return p, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, errors.Wrap(err, "parse parameters")
	}
	if p.Memory == 0 || p.Memory > limits.memory ||
		p.Iterations == 0 || p.Iterations > limits.iterations ||
		p.Parallelism == 0 || p.Parallelism > limits.parallelism {
		return p, nil, nil, errors.Errorf("parameters out of range: m=%d t=%d p=%d", p.Memory, p.Iterations, p.Parallelism)
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, errors.New("invalid salt encoding")
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxArgon2KeyLength {
		return p, nil, nil, errors.New("invalid key encoding")
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
