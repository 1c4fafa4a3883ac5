package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createBranch = `
INSERT INTO branches (id, name, status, organization_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, status, organization_id, created_at
`

type CreateBranchParams struct {
	ID             uuid.UUID
	Name           string
	Status         bool
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}

func (q *Queries) CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error) {
	row := q.db.QueryRow(ctx, createBranch,
		arg.ID, arg.Name, arg.Status, arg.OrganizationID, arg.CreatedAt)
	var b Branch
	err := row.Scan(&b.ID, &b.Name, &b.Status, &b.OrganizationID, &b.CreatedAt)
	return b, err
}

const getBranchByID = `
SELECT b.id, b.name, b.status, b.organization_id, b.created_at, o.name
FROM branches b
JOIN organizations o ON o.id = b.organization_id
WHERE b.id = $1
`

type GetBranchByIDRow struct {
	Branch
	OrganizationName string
}

func (q *Queries) GetBranchByID(ctx context.Context, id uuid.UUID) (GetBranchByIDRow, error) {
	row := q.db.QueryRow(ctx, getBranchByID, id)
	var r GetBranchByIDRow
	err := row.Scan(&r.ID, &r.Name, &r.Status, &r.OrganizationID, &r.CreatedAt, &r.OrganizationName)
	return r, err
}

// The organization name is joined at read time, never copied onto the row.
const listBranches = `
SELECT b.id, b.name, b.status, b.organization_id, b.created_at, o.name
FROM branches b
JOIN organizations o ON o.id = b.organization_id
ORDER BY b.created_at DESC
`

type ListBranchesRow struct {
	Branch
	OrganizationName string
}

func (q *Queries) ListBranches(ctx context.Context) ([]ListBranchesRow, error) {
	rows, err := q.db.Query(ctx, listBranches)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBranchesRow
	for rows.Next() {
		var r ListBranchesRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Status, &r.OrganizationID, &r.CreatedAt, &r.OrganizationName); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// A NULL $2 keeps the stored status. The subselect carries the owning
// organization's name so update responses match the list shape.
const updateBranch = `
UPDATE branches
SET name = $1, status = COALESCE($2, status)
WHERE id = $3
RETURNING id, name, status, organization_id, created_at,
    (SELECT o.name FROM organizations o WHERE o.id = branches.organization_id)
`

type UpdateBranchParams struct {
	Name   string
	Status *bool
	ID     uuid.UUID
}

type UpdateBranchRow struct {
	Branch
	OrganizationName string
}

func (q *Queries) UpdateBranch(ctx context.Context, arg UpdateBranchParams) (UpdateBranchRow, error) {
	row := q.db.QueryRow(ctx, updateBranch, arg.Name, arg.Status, arg.ID)
	var r UpdateBranchRow
	err := row.Scan(&r.ID, &r.Name, &r.Status, &r.OrganizationID, &r.CreatedAt, &r.OrganizationName)
	return r, err
}

const toggleBranch = `
UPDATE branches
SET status = NOT status
WHERE id = $1
RETURNING id, name, status, organization_id, created_at,
    (SELECT o.name FROM organizations o WHERE o.id = branches.organization_id)
`

type ToggleBranchRow struct {
	Branch
	OrganizationName string
}

func (q *Queries) ToggleBranch(ctx context.Context, id uuid.UUID) (ToggleBranchRow, error) {
	row := q.db.QueryRow(ctx, toggleBranch, id)
	var r ToggleBranchRow
	err := row.Scan(&r.ID, &r.Name, &r.Status, &r.OrganizationID, &r.CreatedAt, &r.OrganizationName)
	return r, err
}
