package mailer

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/avayezaryab/backend/internal/mailer Mailer

import (
	"context"

	"go.uber.org/zap"

	"github.com/avayezaryab/backend/config"
)

// Mailer delivers plain-text transactional mail. Callers treat failures as
// non-fatal: the state change that triggered the mail has already committed.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns the SMTP mailer when a host is configured, otherwise a console
// mailer that just logs the message so local development works without SMTP.
func New(cfg config.SMTPConfig, log *zap.SugaredLogger) Mailer {
	if cfg.Host == "" {
		return &ConsoleMailer{log: log}
	}
	return &SMTPMailer{cfg: cfg}
}
