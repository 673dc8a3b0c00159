// Package password wraps bcrypt hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// cost matches bcrypt's default work factor.
const cost = 10

// Hash produces a salted bcrypt hash of the plaintext. The salt is random
// per call, so hashing the same input twice yields different outputs.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// unsupported hash is a mismatch, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
