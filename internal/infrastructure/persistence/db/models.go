package db

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	Email          string
	Username       string
	FirstName      string
	LastName       string
	PasswordHash   string
	OrganizationID uuid.NullUUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Organization struct {
	ID          uuid.UUID
	Name        string
	Description string
	Notes       string
	IsEnabled   bool
	CreatedAt   time.Time
}

type Branch struct {
	ID             uuid.UUID
	Name           string
	Status         bool
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}

type BranchPortalCode struct {
	ID              uuid.UUID
	Code            string
	IntegrationType string
	Status          bool
	BranchID        uuid.UUID
	CreatedAt       time.Time
}
