package auth

import (
	"encoding/hex"
	"strings"
	"testing"

	"resumecoach/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/scrypt"
)

// fastHasher keeps the suite quick; production parameters are covered by the legacy test.
func fastHasher() *scryptHasher {
	return NewScryptHasher(&config.Config{
		Auth: &config.AuthConfig{Scrypt: config.ScryptConfig{N: 1024, R: 8, P: 1, KeyLen: 32, SaltLen: 16}},
	}).(*scryptHasher)
}

func TestScryptHasher_HashAndCheck(t *testing.T) {
	hasher := fastHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "scrypt$1024$8$1$"))

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("correct horse battery stapler", hash))
}

func TestScryptHasher_SaltIsRandom(t *testing.T) {
	hasher := fastHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestScryptHasher_DefaultParameters(t *testing.T) {
	hasher := NewScryptHasher(nil).(*scryptHasher)

	assert.Equal(t, legacyParams, hasher.params)
}

func TestScryptHasher_ChecksLegacyUntaggedHash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key, err := scrypt.Key([]byte("hunter22"), salt, 16384, 8, 1, 64)
	require.NoError(t, err)
	legacy := hex.EncodeToString(salt) + ":" + hex.EncodeToString(key)

	hasher := fastHasher()

	assert.True(t, hasher.Check("hunter22", legacy))
	assert.False(t, hasher.Check("hunter23", legacy))
}

func TestScryptHasher_RejectsMalformedHashes(t *testing.T) {
	hasher := fastHasher()

	malformed := []string{
		"",
		"no-separator",
		"zz:zz",
		"bcrypt$10$8$1$00:00",
		"scrypt$abc$8$1$00:00",
		"scrypt$1024$8$1$00",
		"scrypt$1024$8$00:00",
	}

	for _, hash := range malformed {
		t.Run(hash, func(t *testing.T) {
			assert.False(t, hasher.Check("anything", hash))
		})
	}
}
