package mail

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/service"
)

// logMailer writes emails to the log instead of sending them. Used in development.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that only logs
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, email *service.Email) error {
	m.logger.Info("[LogMailer] Email not sent, mail provider is log",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("tag", email.Tag),
		slog.String("text", email.TextBody),
	)

	return nil
}
