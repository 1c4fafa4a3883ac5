package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createUser = `
INSERT INTO users (id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at
`

type CreateUserParams struct {
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

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.ID, arg.Email, arg.Username, arg.FirstName, arg.LastName,
		arg.PasswordHash, arg.OrganizationID, arg.CreatedAt, arg.UpdatedAt,
	)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByEmail = `
SELECT id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at
FROM users WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByID = `
SELECT id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at
FROM users WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, id)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const listUsers = `
SELECT id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at
FROM users ORDER BY created_at DESC
`

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
			&u.PasswordHash, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const listUsersByOrganization = `
SELECT id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at
FROM users WHERE organization_id = $1 ORDER BY created_at DESC
`

func (q *Queries) ListUsersByOrganization(ctx context.Context, orgID uuid.UUID) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsersByOrganization, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
			&u.PasswordHash, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const updateUser = `
UPDATE users
SET username = $1, email = $2, first_name = $3, last_name = $4, updated_at = NOW()
WHERE id = $5
RETURNING id, email, username, first_name, last_name, password_hash, organization_id, created_at, updated_at
`

type UpdateUserParams struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	ID        uuid.UUID
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser, arg.Username, arg.Email, arg.FirstName, arg.LastName, arg.ID)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
