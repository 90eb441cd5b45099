// Package auth gates the editor API behind HMAC-signed bearer tokens.
// A Service with an empty secret is disabled and lets every request through.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrDisabled     = errors.New("token auth is disabled")
	ErrInvalidToken = errors.New("invalid token")
)

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Enabled reports whether a signing secret is configured.
func (s *Service) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// IssueToken signs a token for subject. A non-positive ttl issues a token
// without expiry.
func (s *Service) IssueToken(subject string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
	}
	if s.ttl > 0 {
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry and returns the subject.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return subject, nil
}
