package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createPortalCode = `
INSERT INTO branch_portal_codes (id, code, integration_type, status, branch_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, code, integration_type, status, branch_id, created_at
`

type CreatePortalCodeParams struct {
	ID              uuid.UUID
	Code            string
	IntegrationType string
	Status          bool
	BranchID        uuid.UUID
	CreatedAt       time.Time
}

func (q *Queries) CreatePortalCode(ctx context.Context, arg CreatePortalCodeParams) (BranchPortalCode, error) {
	row := q.db.QueryRow(ctx, createPortalCode,
		arg.ID, arg.Code, arg.IntegrationType, arg.Status, arg.BranchID, arg.CreatedAt)
	var c BranchPortalCode
	err := row.Scan(&c.ID, &c.Code, &c.IntegrationType, &c.Status, &c.BranchID, &c.CreatedAt)
	return c, err
}

const getPortalCodeByID = `
SELECT id, code, integration_type, status, branch_id, created_at
FROM branch_portal_codes WHERE id = $1
`

func (q *Queries) GetPortalCodeByID(ctx context.Context, id uuid.UUID) (BranchPortalCode, error) {
	row := q.db.QueryRow(ctx, getPortalCodeByID, id)
	var c BranchPortalCode
	err := row.Scan(&c.ID, &c.Code, &c.IntegrationType, &c.Status, &c.BranchID, &c.CreatedAt)
	return c, err
}

const listPortalCodes = `
SELECT id, code, integration_type, status, branch_id, created_at
FROM branch_portal_codes ORDER BY created_at DESC
`

func (q *Queries) ListPortalCodes(ctx context.Context) ([]BranchPortalCode, error) {
	rows, err := q.db.Query(ctx, listPortalCodes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BranchPortalCode
	for rows.Next() {
		var c BranchPortalCode
		if err := rows.Scan(&c.ID, &c.Code, &c.IntegrationType, &c.Status, &c.BranchID, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const togglePortalCode = `
UPDATE branch_portal_codes
SET status = NOT status
WHERE id = $1
RETURNING id, code, integration_type, status, branch_id, created_at
`

func (q *Queries) TogglePortalCode(ctx context.Context, id uuid.UUID) (BranchPortalCode, error) {
	row := q.db.QueryRow(ctx, togglePortalCode, id)
	var c BranchPortalCode
	err := row.Scan(&c.ID, &c.Code, &c.IntegrationType, &c.Status, &c.BranchID, &c.CreatedAt)
	return c, err
}

const deletePortalCode = `
DELETE FROM branch_portal_codes WHERE id = $1
`

// DeletePortalCode reports how many rows were removed so callers can tell a
// repeat delete from a successful one.
func (q *Queries) DeletePortalCode(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deletePortalCode, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
