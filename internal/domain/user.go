package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// User is an administration account. Email is unique across the store and is
// compared exactly as stored. Only the bcrypt hash of the password is kept.
// Users can optionally be attached to an organization (client accounts).
type User struct {
	ID             UserID
	Email          string
	Username       string
	FirstName      string
	LastName       string
	PasswordHash   string
	OrganizationID *OrganizationID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
