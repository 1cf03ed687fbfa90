package mailer

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleMailer logs the message instead of delivering it. Used when no SMTP
// host is configured.
type ConsoleMailer struct {
	log *zap.SugaredLogger
}

func NewConsoleMailer(log *zap.SugaredLogger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Infow("smtp not configured, printing mail instead",
		"to", to, "subject", subject, "body", body)
	return nil
}
