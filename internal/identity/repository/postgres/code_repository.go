package postgres

import (
	"context"
	"fmt"
	"time"

	apperr "github.com/avayezaryab/backend/internal/errors"
	"github.com/avayezaryab/backend/internal/identity/domain"
)

var codeTables = map[domain.CodePurpose]string{
	domain.PurposeEmailVerification: "email_verification_codes",
	domain.PurposePasswordReset:     "password_reset_codes",
}

type CodeRepository struct {
	db DB
}

func NewCodeRepository(db DB) *CodeRepository {
	return &CodeRepository{db: db}
}

func (r *CodeRepository) Insert(ctx context.Context, purpose domain.CodePurpose, code *domain.OneTimeCode) (*domain.OneTimeCode, error) {
	table, err := tableFor(purpose)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (email, code, expires_at, used)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id;
	`, table)

	if err := r.db.QueryRow(ctx, query, code.Email, code.Code, code.ExpiresAt).Scan(&code.ID); err != nil {
		return nil, fmt.Errorf("failed to insert %s code: %w", purpose, err)
	}

	return code, nil
}

// Consume is a single conditional UPDATE so that two concurrent attempts on
// the same code cannot both succeed: the subquery picks the newest unused row
// for (email, code), the outer WHERE re-checks used and expiry under the row
// lock, and an affected count of zero means invalid, already used, or expired.
// A code is accepted up to and including its expiry instant.
func (r *CodeRepository) Consume(ctx context.Context, purpose domain.CodePurpose, email, code string, now time.Time) error {
	table, err := tableFor(purpose)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %[1]s SET used = TRUE
		WHERE id = (
			SELECT id FROM %[1]s
			WHERE email = $1 AND code = $2 AND NOT used
			ORDER BY id DESC
			LIMIT 1
		)
		AND NOT used
		AND expires_at >= $3;
	`, table)

	tag, err := r.db.Exec(ctx, query, email, code, now)
	if err != nil {
		return fmt.Errorf("failed to consume %s code: %w", purpose, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrCodeInvalidOrExpired
	}

	return nil
}

func tableFor(purpose domain.CodePurpose) (string, error) {
	table, ok := codeTables[purpose]
	if !ok {
		return "", fmt.Errorf("unknown code purpose %q", purpose)
	}
	return table, nil
}
