package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/avayezaryab/backend/internal/identity/domain"
)

const (
	defaultCodeLength = 6
	defaultCodeTTL    = 15 * time.Minute
)

// CodeLedger issues and consumes one-time codes on top of a CodeRepository.
// Issuing never invalidates earlier codes for the same email; consuming
// honors only the most recently issued unused unexpired match.
type CodeLedger struct {
	repo   domain.CodeRepository
	length int
	ttl    time.Duration
	now    func() time.Time
}

func NewCodeLedger(repo domain.CodeRepository, length int, ttl time.Duration) *CodeLedger {
	if length <= 0 {
		length = defaultCodeLength
	}
	if ttl <= 0 {
		ttl = defaultCodeTTL
	}
	return &CodeLedger{
		repo:   repo,
		length: length,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (l *CodeLedger) TTL() time.Duration {
	return l.ttl
}

func (l *CodeLedger) Issue(ctx context.Context, purpose domain.CodePurpose, email string) (*domain.OneTimeCode, error) {
	code, err := generateCode(l.length)
	if err != nil {
		return nil, err
	}

	otc := &domain.OneTimeCode{
		Email:     email,
		Code:      code,
		ExpiresAt: l.now().UTC().Add(l.ttl),
	}

	return l.repo.Insert(ctx, purpose, otc)
}

func (l *CodeLedger) Consume(ctx context.Context, purpose domain.CodePurpose, email, code string) error {
	return l.repo.Consume(ctx, purpose, email, code, l.now().UTC())
}

// generateCode draws from the crypto random source and zero-pads to a fixed
// width, so a 6-digit code has exactly 10^6 possibilities.
func generateCode(length int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
