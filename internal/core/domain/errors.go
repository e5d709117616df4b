package domain

import "errors"

var (
	// ErrNoToken signals a missing or malformed Authorization header.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken covers every token verification failure. Expired,
	// forged and malformed tokens are deliberately indistinguishable.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("validation failed")

	ErrUserExists      = errors.New("user with this email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrReportNotFound  = errors.New("report not found")
)
