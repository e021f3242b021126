package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/pitchside/internal/domain"
)

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	Subject string
	IsAdmin bool
}

// TokenIssuer mints signed bearer tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(subject string, isAdmin bool) (string, error)
}

// TokenVerifier validates a bearer token and returns its claims. Tokens are
// stateless: there is no revocation list, so a token stays valid for its
// full window unless the signing secret is rotated. Verification failures
// are domain.ErrTokenExpired, domain.ErrTokenSignatureInvalid, or
// domain.ErrTokenMalformed.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

type tokenClaims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256-signed tokens with a fixed validity window.
// It implements TokenIssuer and TokenVerifier.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT creates a JWT signer/verifier. The secret is injected rather than
// read from process state so tests can run with distinct secrets. A nil now
// defaults to time.Now.
func NewJWT(secret []byte, ttl time.Duration, now func() time.Time) *JWT {
	if now == nil {
		now = time.Now
	}
	return &JWT{secret: secret, ttl: ttl, now: now}
}

// Issue signs a token for subject valid for the configured window from now.
func (j *JWT) Issue(subject string, isAdmin bool) (string, error) {
	issued := j.now()
	claims := tokenClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string against the configured secret
// and clock.
func (j *JWT) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}
	if claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &Claims{Subject: claims.Subject, IsAdmin: claims.IsAdmin}, nil
}
