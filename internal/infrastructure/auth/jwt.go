package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/christian-keitri/my-app/internal/application/ports"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
)

// DefaultSessionExpiry is the fixed lifetime of a session token.
const DefaultSessionExpiry = time.Hour

// TokenIssuer implements ports.TokenIssuer with HS256 and a process-wide
// shared secret passed in at construction. Tokens are stateless: logout only
// clears the client cookie, so an issued token stays valid until expiry.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func NewTokenIssuer(secret []byte, expiry time.Duration) *TokenIssuer {
	if expiry <= 0 {
		expiry = DefaultSessionExpiry
	}
	return &TokenIssuer{secret: secret, expiry: expiry, now: time.Now}
}

func (t *TokenIssuer) Issue(userID, email string) (string, error) {
	now := t.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
		UserID: userID,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Verify(tokenString string) (*ports.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, domerrors.ErrInvalidToken
	}
	out := &ports.SessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
