// Package auth provides the credential primitives: bcrypt password hashing
// and signed bearer token issuance and verification.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords using bcrypt. The cost controls the
// work factor; higher costs slow offline guessing at the price of CPU per
// login.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. The digest embeds its own
// random salt and cost.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest verifies as false rather than surfacing an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
