package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createOrganization = `
INSERT INTO organizations (id, name, description, notes, is_enabled, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, description, notes, is_enabled, created_at
`

type CreateOrganizationParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	Notes       string
	IsEnabled   bool
	CreatedAt   time.Time
}

func (q *Queries) CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, createOrganization,
		arg.ID, arg.Name, arg.Description, arg.Notes, arg.IsEnabled, arg.CreatedAt)
	var o Organization
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.Notes, &o.IsEnabled, &o.CreatedAt)
	return o, err
}

const getOrganizationByID = `
SELECT id, name, description, notes, is_enabled, created_at
FROM organizations WHERE id = $1
`

func (q *Queries) GetOrganizationByID(ctx context.Context, id uuid.UUID) (Organization, error) {
	row := q.db.QueryRow(ctx, getOrganizationByID, id)
	var o Organization
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.Notes, &o.IsEnabled, &o.CreatedAt)
	return o, err
}

const listOrganizations = `
SELECT id, name, description, notes, is_enabled, created_at
FROM organizations ORDER BY created_at DESC
`

func (q *Queries) ListOrganizations(ctx context.Context) ([]Organization, error) {
	rows, err := q.db.Query(ctx, listOrganizations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Organization
	for rows.Next() {
		var o Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.Notes, &o.IsEnabled, &o.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

// A NULL $4 keeps the stored is_enabled value so a field-only update cannot
// silently re-enable a disabled organization.
const updateOrganization = `
UPDATE organizations
SET name = $1, description = $2, notes = $3, is_enabled = COALESCE($4, is_enabled)
WHERE id = $5
RETURNING id, name, description, notes, is_enabled, created_at
`

type UpdateOrganizationParams struct {
	Name        string
	Description string
	Notes       string
	IsEnabled   *bool
	ID          uuid.UUID
}

func (q *Queries) UpdateOrganization(ctx context.Context, arg UpdateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, updateOrganization,
		arg.Name, arg.Description, arg.Notes, arg.IsEnabled, arg.ID)
	var o Organization
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.Notes, &o.IsEnabled, &o.CreatedAt)
	return o, err
}

// Single-statement flip so concurrent toggles cannot interleave a stale read
// with the write.
const toggleOrganization = `
UPDATE organizations
SET is_enabled = NOT is_enabled
WHERE id = $1
RETURNING id, name, description, notes, is_enabled, created_at
`

func (q *Queries) ToggleOrganization(ctx context.Context, id uuid.UUID) (Organization, error) {
	row := q.db.QueryRow(ctx, toggleOrganization, id)
	var o Organization
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.Notes, &o.IsEnabled, &o.CreatedAt)
	return o, err
}
