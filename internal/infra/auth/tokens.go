package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired or signed
// with the wrong key.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims holds the JWT claims the hosted auth provider puts on access
// tokens. Subject is the user id.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenValidator validates HS256 access tokens. This service never mints
// tokens; it only checks what the auth provider issued.
type TokenValidator struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenValidator(secret []byte, issuer, audience string) *TokenValidator {
	return &TokenValidator{secret: secret, issuer: issuer, audience: audience}
}

// Validate parses the token and returns the user id and email.
func (v *TokenValidator) Validate(tokenString string) (userID, email string, err error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return v.secret, nil
		},
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}

// IssueForTest mints a token the validator accepts. Only tests and local
// tooling should call this; production tokens come from the auth provider.
func (v *TokenValidator) IssueForTest(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.issuer,
			Audience:  jwt.ClaimStrings{v.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
