package mail

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/service"

	"github.com/keighl/postmark"
	"github.com/pkg/errors"
)

type postmarkMailer struct {
	client *postmark.Client
	from   string
	logger *slog.Logger
}

// NewPostmarkMailer creates a Mailer that sends through the Postmark API
func NewPostmarkMailer(serverToken, accountToken, from string, logger *slog.Logger) service.Mailer {
	return &postmarkMailer{
		client: postmark.NewClient(serverToken, accountToken),
		from:   from,
		logger: logger,
	}
}

func (m *postmarkMailer) Send(ctx context.Context, email *service.Email) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	res, err := m.client.SendEmail(postmark.Email{
		From:       m.from,
		To:         formatAddress(email.ToName, email.To),
		Subject:    email.Subject,
		HtmlBody:   email.HTMLBody,
		TextBody:   email.TextBody,
		Tag:        email.Tag,
		TrackOpens: false,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send email via postmark")
	}
	if res.ErrorCode != 0 {
		return errors.Errorf("postmark rejected email: %d %s", res.ErrorCode, res.Message)
	}

	m.logger.Debug("[Postmark] Email sent",
		slog.String("message_id", res.MessageID),
		slog.String("tag", email.Tag),
	)

	return nil
}
