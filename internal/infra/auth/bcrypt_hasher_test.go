package auth

import (
	"testing"

	"beantrade/config"
	domainerrors "beantrade/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasherConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // min cost keeps tests fast
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      8,
			MaxLength:      72,
			RequireLetters: true,
			RequireNumbers: true,
		},
	}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	hash, err := hasher.Hash("Password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, hasher.Check("Password123", hash))
	assert.False(t, hasher.Check("Password124", hash))
	assert.False(t, hasher.Check("Password123", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Password123", false},
		{"too short", "Pw1", true},
		{"no digits", "PasswordOnly", true},
		{"no letters", "1234567890", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_DefaultsWithoutStrengthConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	assert.NoError(t, hasher.ValidatePasswordStrength("Password123"))
	assert.Error(t, hasher.ValidatePasswordStrength("short1"))
}
