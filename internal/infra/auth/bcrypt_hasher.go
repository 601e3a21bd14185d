// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	strength := cfg.PasswordStrength
	if strength == nil {
		strength = &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72, // bcrypt input limit
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		}
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies the plaintext against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too short")
	}
	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing digit")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing special character")
	}

	// Trivial passwords pass the character classes but are still rejected.
	lowered := strings.ToLower(password)
	for _, banned := range []string{"password", "12345678", "qwerty"} {
		if strings.Contains(lowered, banned) {
			return domainerrors.ErrPasswordStrength.WrapMessage("password contains a forbidden pattern")
		}
	}

	return nil
}
