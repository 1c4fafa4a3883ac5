package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/christian-keitri/my-app/internal/application/ports"
	"github.com/christian-keitri/my-app/internal/domain"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type RegisterUserInput struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
}

type RegisterUserResult struct {
	User *domain.User
}

// RegisterUser creates an account. The email must not already be taken; the
// password is stored only as a bcrypt hash.
type RegisterUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrInvalidEmail
	}
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &RegisterUserResult{User: user}, nil
}
