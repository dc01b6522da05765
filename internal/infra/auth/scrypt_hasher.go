// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"resumecoach/config"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/errors"

	"golang.org/x/crypto/scrypt"
)

const scryptTag = "scrypt"

// legacyParams are the parameters of untagged "salt:key" hashes.
var legacyParams = ScryptParams{N: 16384, R: 8, P: 1, KeyLen: 64, SaltLen: 16}

// ScryptParams are the key derivation parameters of one hash.
type ScryptParams struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

// scryptHasher implements PasswordHasher with scrypt.
// New hashes are stored as "scrypt$N$r$p$<salt hex>:<key hex>" so parameters can be raised
// later without breaking verification of existing hashes.
type scryptHasher struct {
	params ScryptParams
}

// NewScryptHasher is the constructor for scryptHasher.
func NewScryptHasher(cfg *config.Config) service.PasswordHasher {
	params := legacyParams
	if cfg != nil && cfg.Auth != nil {
		s := cfg.Auth.Scrypt
		if s.N > 0 {
			params.N = s.N
		}
		if s.R > 0 {
			params.R = s.R
		}
		if s.P > 0 {
			params.P = s.P
		}
		if s.KeyLen > 0 {
			params.KeyLen = s.KeyLen
		}
		if s.SaltLen >= legacyParams.SaltLen {
			params.SaltLen = s.SaltLen
		}
	}

	return &scryptHasher{params: params}
}

// Hash derives a key from the password with a fresh random salt.
func (h *scryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key, err := scrypt.Key([]byte(password), salt, h.params.N, h.params.R, h.params.P, h.params.KeyLen)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive key")
	}

	return fmt.Sprintf("%s$%d$%d$%d$%s:%s",
		scryptTag, h.params.N, h.params.R, h.params.P,
		hex.EncodeToString(salt), hex.EncodeToString(key),
	), nil
}

// Check recomputes the key with the stored salt and parameters.
// Malformed hashes never match.
func (h *scryptHasher) Check(password, hash string) bool {
	params, salt, want, err := parseHash(hash)
	if err != nil {
		return false
	}

	got, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, len(want))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}

func parseHash(hash string) (ScryptParams, []byte, []byte, error) {
	params := legacyParams
	pair := hash

	if strings.Contains(hash, "$") {
		parts := strings.Split(hash, "$")
		if len(parts) != 5 || parts[0] != scryptTag {
			return params, nil, nil, errors.New("unknown hash format")
		}

		values := make([]int, 3)
		for i, raw := range parts[1:4] {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				return params, nil, nil, errors.Errorf("invalid scrypt parameter %q", raw)
			}
			values[i] = v
		}
		params.N, params.R, params.P = values[0], values[1], values[2]
		pair = parts[4]
	}

	saltHex, keyHex, ok := strings.Cut(pair, ":")
	if !ok {
		return params, nil, nil, errors.New("missing salt separator")
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return params, nil, nil, errors.New("invalid salt encoding")
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) == 0 {
		return params, nil, nil, errors.New("invalid key encoding")
	}

	return params, salt, key, nil
}
