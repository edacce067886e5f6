// Package token issues and verifies signed bearer tokens.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "inkwell-api"
	audience = "inkwell-client"
)

// ErrInvalidToken is returned for every verification failure. Malformed,
// tampered and expired tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid or expired token")

// Manager signs and verifies HS256 bearer tokens binding a request to a user.
type Manager struct {
	secret []byte
	expiry time.Duration
}

// NewManager returns a Manager signing with the given secret. Tokens expire
// after the given duration.
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// Issue creates a signed token embedding the user ID and an expiry.
func (m *Manager) Issue(userID uint) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("token secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": issuer,
		"aud": audience,
		"exp": now.Add(m.expiry).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": uuid.New().String(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Verify parses a token and returns the embedded user ID. All failure modes
// collapse to ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (uint, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}
