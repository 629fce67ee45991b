// Package auth resolves the acting member from a bearer token.
// Tokens are issued by the identity provider in front of this service; the
// service only needs the member's email out of them.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
	ErrMissingEmail = errors.New("token carries no email")
)

// clockSkew is how far issuer and server clocks may drift on exp/nbf checks.
const clockSkew = 5 * time.Second

// Claims is the token payload. Email names the acting member; Subject carries
// the same value for tooling that only reads registered claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues and checks HS256 member tokens signed with a shared secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewJWTManager returns a manager whose tokens expire ttl after issue.
// Only HS256 tokens that carry an expiry are accepted.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// Generate issues a token naming email as the acting member.
func (m *JWTManager) Generate(email string) (string, error) {
	if email == "" {
		return "", ErrMissingEmail
	}

	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the claims of a correctly signed, unexpired token that
// names a member. Every failure wraps ErrInvalidToken.
func (m *JWTManager) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, ErrMissingEmail)
	}
	return claims, nil
}
