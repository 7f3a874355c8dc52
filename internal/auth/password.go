// Package auth covers password hashing, opaque Redis-backed sessions, and
// password-reset tokens.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
)

const defaultBcryptCost = 12

// Hasher wraps bcrypt with a configurable cost.
type Hasher struct {
	cost        int
	minPassword int
}

func NewHasher(cost, minPassword int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	if minPassword <= 0 {
		minPassword = 8
	}
	return &Hasher{cost: cost, minPassword: minPassword}
}

// Hash checks the minimum length then bcrypt-hashes the password.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) < h.minPassword {
		return "", apperrors.NewWeakPasswordError(h.minPassword)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether the password matches the stored hash.
func (h *Hasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewResetToken returns a 32-byte random token in hex.
func NewResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
