package auth

import (
	"testing"

	"dailyfarm/config"
	domainerrors "dailyfarm/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // MinCost keeps tests fast
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"Harvest2026ok",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "expected valid password: %s", password)
	}

	weakPasswords := []string{
		"123",         // too short
		"password123", // no uppercase
		"PASSWORD123", // no lowercase
		"PasswordABC", // no numbers
	}
	for _, password := range weakPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength, "expected weak password: %s", password)
	}
}

func TestBcryptHasher_DefaultPolicyWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	// Only length bounds apply without an explicit policy.
	assert.NoError(t, hasher.ValidatePasswordStrength("alllowercase"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
