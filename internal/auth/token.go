package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any token that fails signature,
// structure, or time-based validation.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-client"
)

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// key is loaded once at startup and held immutably for the process lifetime;
// when the key is generated rather than configured, tokens issued before a
// restart become unverifiable after it.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must not be empty")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue creates a signed token carrying subject and expiring ttl from now.
// Expiry timestamps have second precision, so a ttl of zero produces a token
// that is already expired at verification time.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ID:        fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the token's signature, issuer, audience, and expiry, and
// returns the subject claim. The subject is returned verbatim; callers are
// responsible for resolving it against stored author fields.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
