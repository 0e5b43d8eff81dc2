package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt. The salt is random,
// so two calls with the same password produce different hashes; stored
// hashes must only ever be checked with VerifyPassword, never compared for
// equality.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// A wrong password is not an error: it returns (false, nil). A stored hash
// that is not valid bcrypt output fails with common.ErrMalformedHash, which
// indicates corruption rather than a bad credential.
func VerifyPassword(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
}
