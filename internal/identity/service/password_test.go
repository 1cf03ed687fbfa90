package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avayezaryab/backend/internal/identity/service"
)

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector, uppercase hex: this is the digest format the
	// existing user rows carry, so it must stay byte for byte stable.
	digest := service.HashPassword("password")

	assert.Equal(t, "5E884898DA28047151D0E56F8DC6292773603D0D6AABBDD62A11EF721D1542D8", digest)
}

func TestHashPassword_Deterministic(t *testing.T) {
	assert.Equal(t, service.HashPassword("Pw1!"), service.HashPassword("Pw1!"))
	assert.NotEqual(t, service.HashPassword("Pw1!"), service.HashPassword("Pw2!"))
}

func TestVerifyPassword(t *testing.T) {
	digest := service.HashPassword("Pw1!")

	assert.True(t, service.VerifyPassword("Pw1!", digest))
	assert.False(t, service.VerifyPassword("pw1!", digest))
	assert.False(t, service.VerifyPassword("Pw1!", "not-a-digest"))
	assert.False(t, service.VerifyPassword("Pw1!", ""))
}
