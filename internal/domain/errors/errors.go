package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrEmailExists          = errors.New("email already in use")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUserNotFound         = errors.New("user not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrPortalCodeNotFound   = errors.New("portal code not found")
)
