package domain

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/avayezaryab/backend/internal/identity/domain UserRepository,CodeRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	// Create inserts the user, relying on the unique email index. A duplicate
	// email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByIdentifier matches email or username exactly. When one user's
	// username equals another user's email, the email match wins.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	UpdatePasswordDigest(ctx context.Context, userID int64, digest string) error
	MarkEmailVerified(ctx context.Context, userID int64) error
}

type CodeRepository interface {
	// Insert stores a freshly issued code and fills in its id.
	Insert(ctx context.Context, purpose CodePurpose, code *OneTimeCode) (*OneTimeCode, error)
	// Consume marks the most recently issued unused (email, code) row as used,
	// atomically. It returns ErrCodeInvalidOrExpired when no such row exists,
	// the row was already used, or the row expired before now.
	Consume(ctx context.Context, purpose CodePurpose, email, code string, now time.Time) error
}
