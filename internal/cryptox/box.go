// Package cryptox implements the at-rest cryptography used by Shopfront:
// AES-GCM field encryption, a keyed fingerprint for deterministic lookups,
// and bcrypt password hashing.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/shopfront/internal/common"
)

// Box encrypts and decrypts string fields with a single process-wide
// symmetric key. It is constructed once at startup and is read-only
// afterwards; the key is never rotated at runtime.
type Box struct {
	aead cipher.AEAD
	key  []byte
}

// NewBox builds a Box from a base64-encoded AES key (standard or URL-safe
// alphabet, 16, 24, or 32 bytes once decoded). An empty or malformed key is
// a constructor error; the caller treats it as fatal at startup.
func NewBox(encodedKey string) (*Box, error) {
	if encodedKey == "" {
		return nil, fmt.Errorf("encryption key is not set")
	}

	key, err := decodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("initializing GCM: %w", err)
	}

	return &Box{aead: aead, key: key}, nil
}

func decodeKey(encoded string) ([]byte, error) {
	var key []byte
	var err error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.URLEncoding,
		base64.RawStdEncoding, base64.RawURLEncoding,
	} {
		if key, err = enc.DecodeString(encoded); err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("key must be 16, 24, or 32 bytes, got %d", len(key))
	}
}

// Encrypt seals the plaintext with a fresh random nonce and returns the
// nonce prepended to the ciphertext as one opaque blob. Two calls with the
// same plaintext produce different outputs.
func (b *Box) Encrypt(plaintext string) ([]byte, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return b.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Decrypt opens a blob produced by Encrypt. Truncated, corrupted, or
// foreign input fails with common.ErrInvalidCiphertext; a partial plaintext
// is never returned.
func (b *Box) Decrypt(ciphertext []byte) (string, error) {
	if len(ciphertext) < b.aead.NonceSize() {
		return "", common.ErrInvalidCiphertext
	}

	nonce, sealed := ciphertext[:b.aead.NonceSize()], ciphertext[b.aead.NonceSize():]
	plaintext, err := b.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", common.ErrInvalidCiphertext
	}

	return string(plaintext), nil
}

// Fingerprint returns a deterministic hex digest of s, keyed with the box
// key (HMAC-SHA256). Equal inputs always produce equal digests, so the
// result can back uniqueness constraints and lookups over values that are
// stored as non-deterministic ciphertext.
func (b *Box) Fingerprint(s string) string {
	mac := hmac.New(sha256.New, b.key)
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil))
}
