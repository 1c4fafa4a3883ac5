package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/christian-keitri/my-app/internal/application/ports"
	"github.com/christian-keitri/my-app/internal/domain"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
)

// In-memory repositories for handler tests. Lists return newest first to
// match the store ordering.

type fakeUserRepo struct {
	users []*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID.UUID == (uuid.UUID{}) {
		user.ID = domain.NewUserID(uuid.New())
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID domain.UserID) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, f.users[i])
	}
	return out, nil
}

func (f *fakeUserRepo) ListByOrganization(_ context.Context, orgID domain.OrganizationID) ([]*domain.User, error) {
	var out []*domain.User
	for i := len(f.users) - 1; i >= 0; i-- {
		u := f.users[i]
		if u.OrganizationID != nil && *u.OrganizationID == orgID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, userID domain.UserID, fields ports.UserUpdate) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			u.Username = fields.Username
			u.Email = fields.Email
			u.FirstName = fields.FirstName
			u.LastName = fields.LastName
			u.UpdatedAt = time.Now()
			return u, nil
		}
	}
	return nil, domerrors.ErrUserNotFound
}

type fakeOrgRepo struct {
	orgs []*domain.Organization
}

func (f *fakeOrgRepo) Create(_ context.Context, org *domain.Organization) error {
	if org.ID.UUID == (uuid.UUID{}) {
		org.ID = domain.NewOrganizationID(uuid.New())
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now()
	}
	f.orgs = append(f.orgs, org)
	return nil
}

func (f *fakeOrgRepo) GetByID(_ context.Context, orgID domain.OrganizationID) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == orgID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) List(_ context.Context) ([]*domain.Organization, error) {
	out := make([]*domain.Organization, 0, len(f.orgs))
	for i := len(f.orgs) - 1; i >= 0; i-- {
		out = append(out, f.orgs[i])
	}
	return out, nil
}

func (f *fakeOrgRepo) Update(_ context.Context, orgID domain.OrganizationID, fields ports.OrganizationUpdate) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == orgID {
			o.Name = fields.Name
			o.Description = fields.Description
			o.Notes = fields.Notes
			if fields.IsEnabled != nil {
				o.IsEnabled = *fields.IsEnabled
			}
			return o, nil
		}
	}
	return nil, domerrors.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) Toggle(_ context.Context, orgID domain.OrganizationID) (*domain.Organization, error) {
	for _, o := range f.orgs {
		if o.ID == orgID {
			o.IsEnabled = !o.IsEnabled
			return o, nil
		}
	}
	return nil, domerrors.ErrOrganizationNotFound
}

type fakeBranchRepo struct {
	branches []*domain.Branch
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *domain.Branch) error {
	if branch.ID.UUID == (uuid.UUID{}) {
		branch.ID = domain.NewBranchID(uuid.New())
	}
	if branch.CreatedAt.IsZero() {
		branch.CreatedAt = time.Now()
	}
	f.branches = append(f.branches, branch)
	return nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, branchID domain.BranchID) (*domain.Branch, error) {
	for _, b := range f.branches {
		if b.ID == branchID {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) List(_ context.Context) ([]*domain.Branch, error) {
	out := make([]*domain.Branch, 0, len(f.branches))
	for i := len(f.branches) - 1; i >= 0; i-- {
		out = append(out, f.branches[i])
	}
	return out, nil
}

func (f *fakeBranchRepo) Update(_ context.Context, branchID domain.BranchID, fields ports.BranchUpdate) (*domain.Branch, error) {
	for _, b := range f.branches {
		if b.ID == branchID {
			b.Name = fields.Name
			if fields.Status != nil {
				b.Status = *fields.Status
			}
			return b, nil
		}
	}
	return nil, domerrors.ErrBranchNotFound
}

func (f *fakeBranchRepo) Toggle(_ context.Context, branchID domain.BranchID) (*domain.Branch, error) {
	for _, b := range f.branches {
		if b.ID == branchID {
			b.Status = !b.Status
			return b, nil
		}
	}
	return nil, domerrors.ErrBranchNotFound
}

type fakePortalCodeRepo struct {
	codes []*domain.BranchPortalCode
}

func (f *fakePortalCodeRepo) Create(_ context.Context, code *domain.BranchPortalCode) error {
	if code.ID.UUID == (uuid.UUID{}) {
		code.ID = domain.NewPortalCodeID(uuid.New())
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	f.codes = append(f.codes, code)
	return nil
}

func (f *fakePortalCodeRepo) GetByID(_ context.Context, codeID domain.PortalCodeID) (*domain.BranchPortalCode, error) {
	for _, c := range f.codes {
		if c.ID == codeID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakePortalCodeRepo) List(_ context.Context) ([]*domain.BranchPortalCode, error) {
	out := make([]*domain.BranchPortalCode, 0, len(f.codes))
	for i := len(f.codes) - 1; i >= 0; i-- {
		out = append(out, f.codes[i])
	}
	return out, nil
}

func (f *fakePortalCodeRepo) Toggle(_ context.Context, codeID domain.PortalCodeID) (*domain.BranchPortalCode, error) {
	for _, c := range f.codes {
		if c.ID == codeID {
			c.Status = !c.Status
			return c, nil
		}
	}
	return nil, domerrors.ErrPortalCodeNotFound
}

func (f *fakePortalCodeRepo) Delete(_ context.Context, codeID domain.PortalCodeID) error {
	for i, c := range f.codes {
		if c.ID == codeID {
			f.codes = append(f.codes[:i], f.codes[i+1:]...)
			return nil
		}
	}
	return domerrors.ErrPortalCodeNotFound
}

var (
	_ ports.UserRepository         = (*fakeUserRepo)(nil)
	_ ports.OrganizationRepository = (*fakeOrgRepo)(nil)
	_ ports.BranchRepository       = (*fakeBranchRepo)(nil)
	_ ports.PortalCodeRepository   = (*fakePortalCodeRepo)(nil)
)
