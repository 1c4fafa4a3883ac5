package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationID is a value object for organization identity.
type OrganizationID struct{ uuid.UUID }

// NewOrganizationID creates a new OrganizationID from uuid.
func NewOrganizationID(id uuid.UUID) OrganizationID { return OrganizationID{UUID: id} }

// String returns the canonical string form.
func (o OrganizationID) String() string { return o.UUID.String() }

// Organization is the top level of the hierarchy. Name is required on create
// and update. New organizations start enabled.
type Organization struct {
	ID          OrganizationID
	Name        string
	Description string
	Notes       string
	IsEnabled   bool
	CreatedAt   time.Time
}
