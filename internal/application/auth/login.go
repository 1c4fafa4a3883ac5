package auth

import (
	"context"

	"github.com/christian-keitri/my-app/internal/application/ports"
	"github.com/christian-keitri/my-app/internal/domain"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *domain.User
}

// Login verifies credentials and mints a session token. An unknown email and
// a wrong password both fail with ErrInvalidCredentials so the response does
// not reveal which of the two was wrong.
type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Login {
	return &Login{users: users, hasher: hasher, issuer: issuer}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.Issue(user.ID.String(), user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
