package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperr "github.com/avayezaryab/backend/internal/errors"
	"github.com/avayezaryab/backend/internal/identity/domain"
)

const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the repositories need; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_digest, email_verified, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordDigest, user.EmailVerified, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperr.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_digest, email_verified, created_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// FindByIdentifier matches either email or username exactly. If one user's
// username collides with another user's email, the email match is preferred;
// the ORDER BY below makes that explicit instead of leaving it to row order.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_digest, email_verified, created_at
		FROM users
		WHERE email = $1 OR username = $1
		ORDER BY (email = $1) DESC, id ASC
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, identifier))
}

func (r *UserRepository) UpdatePasswordDigest(ctx context.Context, userID int64, digest string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_digest = $2 WHERE id = $1`, userID, digest)
	if err != nil {
		return fmt.Errorf("failed to update password digest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET email_verified = TRUE WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email,
		&user.PasswordDigest, &user.EmailVerified, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}
