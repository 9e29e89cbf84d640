package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, or natural expiry.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Codec issues and verifies the self-contained session tokens carried in
// the session cookie. Tokens cannot be revoked server-side; an issued
// token stays valid until it expires, even after logout.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Issue creates a signed token asserting the given email, valid for the
// codec's TTL.
func (c *Codec) Issue(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token, returning the email it asserts.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})

	if err != nil || !token.Valid || claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}
