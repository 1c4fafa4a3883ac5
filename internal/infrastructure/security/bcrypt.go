package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/christian-keitri/my-app/internal/application/ports"
)

// DefaultBcryptCost matches what the front office has always used.
const DefaultBcryptCost = 10

// BcryptHasher implements ports.PasswordHasher using bcrypt. bcrypt generates
// a random salt per call, so two hashes of the same password differ.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time via bcrypt.CompareHashAndPassword.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
