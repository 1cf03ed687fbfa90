package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/avayezaryab/backend/internal/identity/service TokenIssuer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenIssuer produces opaque bearer tokens for completed authentication
// events. Tokens are not persisted and nothing validates them on later
// requests; binding them to server-side state is future work.
type TokenIssuer interface {
	Issue() (string, error)
}

// RandomTokenIssuer emits 32 lowercase hex characters (128 bits) from the
// crypto random source.
type RandomTokenIssuer struct{}

func (RandomTokenIssuer) Issue() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
