// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"passage/config"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	"passage/internal/errors"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{
		cost:      bcrypt.DefaultCost,
		minLength: defaultMinPasswordLength,
	}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			h.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			h.minLength = cfg.Auth.MinPasswordLength
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Verify compares a plaintext password with a bcrypt hash.
// bcrypt compares the derived keys with subtle.ConstantTimeCompare.
func (h *bcryptHasher) Verify(storedHash, plaintext string) (bool, error) {
	if _, err := bcrypt.Cost([]byte(storedHash)); err != nil {
		return false, domainerrors.ErrMalformedHash.WrapMessage(err.Error())
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domainerrors.ErrMalformedHash.WrapMessage(err.Error())
	}
}

// ValidatePasswordStrength enforces the minimum length. bcrypt ignores
// everything past 72 bytes, so longer passwords are rejected as well.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if len(password) > 72 {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	return nil
}
