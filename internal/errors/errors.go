package errors

import (
	"errors"
)

var (
	ErrValidation           = errors.New("invalid input")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCodeInvalidOrExpired = errors.New("code invalid or expired")
	ErrUnauthorized         = errors.New("unauthorized")
)
