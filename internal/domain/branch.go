package domain

import (
	"time"

	"github.com/google/uuid"
)

// BranchID is a value object for branch identity.
type BranchID struct{ uuid.UUID }

// NewBranchID creates a new BranchID from uuid.
func NewBranchID(id uuid.UUID) BranchID { return BranchID{UUID: id} }

// String returns the canonical string form.
func (b BranchID) String() string { return b.UUID.String() }

// Branch belongs to exactly one organization, which must exist when the
// branch is created. New branches start with Status true.
type Branch struct {
	ID             BranchID
	Name           string
	Status         bool
	OrganizationID OrganizationID
	CreatedAt      time.Time

	// OrganizationName is populated by list queries via a join; it is never
	// persisted on the branch row.
	OrganizationName string
}
