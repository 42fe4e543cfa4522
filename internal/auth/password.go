// Package auth provides password hashing and bearer token services.
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies credentials using bcrypt.
// bcrypt handles salt generation, so hashing the same input twice
// yields different hash strings.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher with the given bcrypt cost.
// A cost <= 0 falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify reports whether the plaintext password matches the stored hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
