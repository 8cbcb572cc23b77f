package core

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of a session token: the verified e-mail plus
// standard issued-at/expiry claims.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs an HS256 token asserting the e-mail identity,
// valid for the configured session TTL (7 days by default).
func (s *Service) IssueSessionToken(email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.SessionSecret)
}

// ParseSessionToken validates signature and expiry and returns the decoded
// claims. Validity is purely signature + expiry; there is no revocation list.
func (s *Service) ParseSessionToken(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.opts.SessionSecret, nil
	}, jwt.WithIssuer(s.opts.Issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
