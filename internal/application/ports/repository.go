package ports

import (
	"context"

	"github.com/christian-keitri/my-app/internal/domain"
)

// UserUpdate carries the editable profile fields. Password changes are not
// exposed through profile updates.
type UserUpdate struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// UserRepository defines persistence for users. Get methods return (nil, nil)
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByOrganization(ctx context.Context, orgID domain.OrganizationID) ([]*domain.User, error)
	Update(ctx context.Context, userID domain.UserID, fields UserUpdate) (*domain.User, error)
}

// OrganizationUpdate carries the editable organization fields. A nil
// IsEnabled leaves the stored flag untouched; only the toggle endpoint and an
// explicit isEnabled in the body change it.
type OrganizationUpdate struct {
	Name        string
	Description string
	Notes       string
	IsEnabled   *bool
}

// OrganizationRepository defines persistence for organizations. Update and
// Toggle return errors.ErrOrganizationNotFound for unresolved ids; Toggle
// flips is_enabled atomically in the store.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, orgID domain.OrganizationID) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	Update(ctx context.Context, orgID domain.OrganizationID, fields OrganizationUpdate) (*domain.Organization, error)
	Toggle(ctx context.Context, orgID domain.OrganizationID) (*domain.Organization, error)
}

// BranchUpdate carries the editable branch fields. A nil Status leaves the
// stored flag untouched.
type BranchUpdate struct {
	Name   string
	Status *bool
}

// BranchRepository defines persistence for branches. List includes the owning
// organization's name via a read-time join, newest first.
type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) error
	GetByID(ctx context.Context, branchID domain.BranchID) (*domain.Branch, error)
	List(ctx context.Context) ([]*domain.Branch, error)
	Update(ctx context.Context, branchID domain.BranchID, fields BranchUpdate) (*domain.Branch, error)
	Toggle(ctx context.Context, branchID domain.BranchID) (*domain.Branch, error)
}

// PortalCodeRepository defines persistence for branch portal codes. Delete is
// a hard removal and fails with errors.ErrPortalCodeNotFound when the id does
// not resolve, including on repeated deletes.
type PortalCodeRepository interface {
	Create(ctx context.Context, code *domain.BranchPortalCode) error
	GetByID(ctx context.Context, codeID domain.PortalCodeID) (*domain.BranchPortalCode, error)
	List(ctx context.Context) ([]*domain.BranchPortalCode, error)
	Toggle(ctx context.Context, codeID domain.PortalCodeID) (*domain.BranchPortalCode, error)
	Delete(ctx context.Context, codeID domain.PortalCodeID) error
}
