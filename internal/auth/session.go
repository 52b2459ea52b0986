package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL bounds session token lifetime when none is configured.
const DefaultSessionTTL = 12 * time.Hour

// Sessions issues and verifies HS256-signed session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

// NewSessions builds a session signer with the given secret and lifetime.
func NewSessions(secret []byte, ttl time.Duration) (*Sessions, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{secret: secret, ttl: ttl, clock: time.Now}, nil
}

// Issue signs a session token for the given user id.
func (s *Sessions) Issue(userID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("sessions are not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}

	now := s.clock().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify parses a session token and returns the user id it names.
func (s *Sessions) Verify(token string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("sessions are not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("session token is required")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return s.clock().UTC() }),
	)
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return claims.Subject, nil
}
