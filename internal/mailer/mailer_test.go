package mailer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avayezaryab/backend/config"
	"github.com/avayezaryab/backend/internal/mailer"
)

func TestNewPicksConsoleWithoutHost(t *testing.T) {
	m := mailer.New(config.SMTPConfig{}, zap.NewNop().Sugar())

	_, ok := m.(*mailer.ConsoleMailer)
	assert.True(t, ok)
}

func TestNewPicksSMTPWithHost(t *testing.T) {
	m := mailer.New(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, zap.NewNop().Sugar())

	_, ok := m.(*mailer.SMTPMailer)
	assert.True(t, ok)
}

func TestConsoleMailerNeverFails(t *testing.T) {
	m := mailer.NewConsoleMailer(zap.NewNop().Sugar())

	err := m.Send(context.Background(), "a@x.com", "subject", "body")
	require.NoError(t, err)
}
