// Package mail delivers transactional email through Postmark, SendGrid or the log.
package mail

import (
	"log/slog"
	"net/mail"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the Mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates the Mailer selected by mail.provider
func NewMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderLog {
		logger.Info("Mail provider is log, emails will not be delivered")

		return NewLogMailer(logger), nil
	}

	if cfg.SenderAddress == "" {
		return nil, errors.New("mail.senderAddress is required")
	}

	switch cfg.Provider {
	case constants.MailProviderPostmark:
		if cfg.PostmarkServerToken == "" {
			return nil, errors.New("mail.postmarkServerToken is required for postmark provider")
		}
		logger.Info("Using Postmark mailer", slog.String("sender", cfg.SenderAddress))

		return NewPostmarkMailer(cfg.PostmarkServerToken, cfg.PostmarkAccountToken,
			formatAddress(cfg.SenderName, cfg.SenderAddress), logger), nil

	case constants.MailProviderSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, errors.New("mail.sendgridApiKey is required for sendgrid provider")
		}
		logger.Info("Using SendGrid mailer", slog.String("sender", cfg.SenderAddress))

		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.SenderAddress, cfg.SenderName, logger), nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

func formatAddress(name, address string) string {
	if name == "" {
		return address
	}

	return (&mail.Address{Name: name, Address: address}).String()
}

// Module provides the Mailer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)
