package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/christian-keitri/my-app/internal/application/ports"
	"github.com/christian-keitri/my-app/internal/domain"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
	"github.com/christian-keitri/my-app/internal/infrastructure/persistence/db"
)

type OrganizationRepository struct {
	q *db.Queries
}

func NewOrganizationRepository(q *db.Queries) *OrganizationRepository {
	return &OrganizationRepository{q: q}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	if org.ID.UUID == (uuid.UUID{}) {
		org.ID = domain.NewOrganizationID(uuid.New())
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now()
	}
	created, err := r.q.CreateOrganization(ctx, db.CreateOrganizationParams{
		ID:          org.ID.UUID,
		Name:        org.Name,
		Description: org.Description,
		Notes:       org.Notes,
		IsEnabled:   org.IsEnabled,
		CreatedAt:   org.CreatedAt,
	})
	if err != nil {
		return err
	}
	*org = dbOrgToDomain(created)
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, orgID domain.OrganizationID) (*domain.Organization, error) {
	o, err := r.q.GetOrganizationByID(ctx, orgID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	org := dbOrgToDomain(o)
	return &org, nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	list, err := r.q.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Organization, 0, len(list))
	for _, o := range list {
		org := dbOrgToDomain(o)
		out = append(out, &org)
	}
	return out, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, orgID domain.OrganizationID, fields ports.OrganizationUpdate) (*domain.Organization, error) {
	o, err := r.q.UpdateOrganization(ctx, db.UpdateOrganizationParams{
		Name:        fields.Name,
		Description: fields.Description,
		Notes:       fields.Notes,
		IsEnabled:   fields.IsEnabled,
		ID:          orgID.UUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	org := dbOrgToDomain(o)
	return &org, nil
}

func (r *OrganizationRepository) Toggle(ctx context.Context, orgID domain.OrganizationID) (*domain.Organization, error) {
	o, err := r.q.ToggleOrganization(ctx, orgID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	org := dbOrgToDomain(o)
	return &org, nil
}

func dbOrgToDomain(o db.Organization) domain.Organization {
	return domain.Organization{
		ID:          domain.NewOrganizationID(o.ID),
		Name:        o.Name,
		Description: o.Description,
		Notes:       o.Notes,
		IsEnabled:   o.IsEnabled,
		CreatedAt:   o.CreatedAt,
	}
}

var _ ports.OrganizationRepository = (*OrganizationRepository)(nil)
