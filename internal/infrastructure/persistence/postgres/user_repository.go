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

type UserRepository struct {
	q *db.Queries
}

func NewUserRepository(q *db.Queries) *UserRepository {
	return &UserRepository{q: q}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID.UUID == (uuid.UUID{}) {
		user.ID = domain.NewUserID(uuid.New())
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	var orgID uuid.NullUUID
	if user.OrganizationID != nil {
		orgID = uuid.NullUUID{UUID: user.OrganizationID.UUID, Valid: true}
	}
	_, err := r.q.CreateUser(ctx, db.CreateUserParams{
		ID:             user.ID.UUID,
		Email:          user.Email,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		PasswordHash:   user.PasswordHash,
		OrganizationID: orgID,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	})
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	u, err := r.q.GetUserByID(ctx, userID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, dbUserToDomain(u))
	}
	return out, nil
}

func (r *UserRepository) ListByOrganization(ctx context.Context, orgID domain.OrganizationID) ([]*domain.User, error) {
	users, err := r.q.ListUsersByOrganization(ctx, orgID.UUID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, dbUserToDomain(u))
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, userID domain.UserID, fields ports.UserUpdate) (*domain.User, error) {
	u, err := r.q.UpdateUser(ctx, db.UpdateUserParams{
		Username:  fields.Username,
		Email:     fields.Email,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		ID:        userID.UUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrUserNotFound
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func dbUserToDomain(u db.User) *domain.User {
	var orgID *domain.OrganizationID
	if u.OrganizationID.Valid {
		id := domain.NewOrganizationID(u.OrganizationID.UUID)
		orgID = &id
	}
	return &domain.User{
		ID:             domain.NewUserID(u.ID),
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PasswordHash:   u.PasswordHash,
		OrganizationID: orgID,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ ports.UserRepository = (*UserRepository)(nil)
