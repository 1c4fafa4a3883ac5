package domain

import (
	"time"

	"github.com/google/uuid"
)

// PortalCodeID is a value object for portal code identity.
type PortalCodeID struct{ uuid.UUID }

// NewPortalCodeID creates a new PortalCodeID from uuid.
func NewPortalCodeID(id uuid.UUID) PortalCodeID { return PortalCodeID{UUID: id} }

// String returns the canonical string form.
func (p PortalCodeID) String() string { return p.UUID.String() }

// Integration channels a portal code can activate.
const (
	IntegrationSMS   = "sms"
	IntegrationEmail = "email"
	IntegrationQR    = "qr"
	IntegrationWeb   = "web"
)

// ValidIntegrationType reports whether t names a known integration channel.
func ValidIntegrationType(t string) bool {
	switch t {
	case IntegrationSMS, IntegrationEmail, IntegrationQR, IntegrationWeb:
		return true
	}
	return false
}

// BranchPortalCode is a per-branch activation code tied to an external
// integration channel. It is the only entity in the model that can be hard
// deleted.
type BranchPortalCode struct {
	ID              PortalCodeID
	Code            string
	IntegrationType string
	Status          bool
	BranchID        BranchID
	CreatedAt       time.Time
}
