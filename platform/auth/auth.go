// Package auth verifies the tokens issued by the identity provider and exposes
// the authenticated user to the rest of the application.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be trusted
var ErrInvalidToken = errors.New("invalid token")

// User is the authenticated account a request acts on behalf of
type User struct {
	ID    string `json:"id" example:"b1f0c6a2"`
	Name  string `json:"name,omitempty" example:"Ada"`
	Email string `json:"email,omitempty" example:"ada@example.com"`
}

// DisplayName returns the user name, or the email when no name was set
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Claims is the token payload issued by the identity provider
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens signed with a shared secret
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier. An empty issuer skips the issuer check
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses the token and returns the user it identifies
func (v *Verifier) Verify(token string) (User, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return User{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return User{}, ErrInvalidToken
	}

	return User{ID: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}

// Issue signs a token for the user valid for ttl
func (v *Verifier) Issue(u User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
