package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt cost factor used for all new hashes.
const Cost = 10

// Hash returns a salted bcrypt digest of the plaintext password.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext is the password that produced digest.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Hasher adapts the package functions to the hashing interfaces the
// services declare.
type Hasher struct{}

func (Hasher) Hash(plaintext string) (string, error) {
	return Hash(plaintext)
}

func (Hasher) Verify(plaintext, digest string) bool {
	return Verify(plaintext, digest)
}

// IsHashed reports whether s already looks like a bcrypt digest.
// Used as a guard so that an already-hashed value saved through an
// update path is never hashed a second time.
func IsHashed(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
