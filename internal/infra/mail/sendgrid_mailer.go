package mail

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	client   *sendgrid.Client
	fromName string
	from     string
	logger   *slog.Logger
}

// NewSendGridMailer creates a Mailer that sends through the SendGrid v3 API
func NewSendGridMailer(apiKey, from, fromName string, logger *slog.Logger) service.Mailer {
	return &sendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		from:     from,
		logger:   logger,
	}
}

func (m *sendGridMailer) Send(ctx context.Context, email *service.Email) error {
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.fromName, m.from),
		email.Subject,
		sgmail.NewEmail(email.ToName, email.To),
		email.TextBody,
		email.HTMLBody,
	)
	if email.Tag != "" {
		message.AddCategories(email.Tag)
	}

	res, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send email via sendgrid")
	}
	if res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid rejected email: %d %s", res.StatusCode, res.Body)
	}

	m.logger.Debug("[SendGrid] Email sent",
		slog.Int("status", res.StatusCode),
		slog.String("tag", email.Tag),
	)

	return nil
}
