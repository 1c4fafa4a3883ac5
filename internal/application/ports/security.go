package ports

import "time"

// PasswordHasher hashes and verifies passwords (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SessionClaims is the claim set embedded in a session token.
type SessionClaims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and validates session tokens (HS256). Tokens are
// self-contained; there is no server-side session state and no revocation
// before natural expiry.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}
