// Package auth implements the signed-token service: self-contained,
// time-limited JWTs carrying the authenticated subject (the username).
// Tokens are stateless; there is no server-side revocation.
package auth

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Leeway is the tolerance applied to expiry checks to absorb clock skew
// between the issuing and verifying host.
const Leeway = 30 * time.Second

// DefaultTTL is the token lifetime used when none is configured (24h).
const DefaultTTL = 24 * time.Hour

// TokenManager issues and verifies signed bearer tokens with a process-wide
// secret and a fixed HMAC signing algorithm. It is read-only after
// construction.
//
// A manager built without a secret or with an unknown algorithm is disabled:
// Issue fails and Subject never returns a subject, so no valid session can
// ever exist.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager for the given secret and algorithm
// name (HS256, HS384, or HS512). The ttl is taken as configured: a
// non-positive ttl issues tokens that are expired on arrival and never
// verify.
func NewTokenManager(secret, algorithm string, ttl time.Duration) *TokenManager {
	m := &TokenManager{ttl: ttl}
	if secret == "" {
		return m
	}

	method := jwt.GetSigningMethod(strings.ToUpper(algorithm))
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return m
	}

	m.secret = []byte(secret)
	m.method = method
	return m
}

// Issue creates a signed token asserting the given subject, expiring after
// the manager's ttl.
func (m *TokenManager) Issue(subject string) (string, error) {
	if m.method == nil {
		return "", common.ErrInvalidToken
	}

	now := time.Now()
	token := jwt.NewWithClaims(m.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})

	return token.SignedString(m.secret)
}

// Subject verifies the token's signature and expiry and returns the embedded
// subject. Any failure (bad signature, expired, structurally malformed, or a
// disabled manager) yields the empty string; callers treat that as
// "no session", never as an error.
func (m *TokenManager) Subject(tokenString string) string {
	if m.method == nil {
		return ""
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != m.method.Alg() {
			return nil, common.ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithLeeway(Leeway), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return ""
	}

	// expiry at or before the issue time means the token was never valid;
	// leeway only covers clock skew
	if claims.IssuedAt != nil && !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		return ""
	}

	return claims.Subject
}
