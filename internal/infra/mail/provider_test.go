package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParams(mailCfg *config.MailConfig) Params {
	return Params{
		Config: &config.Config{Mail: mailCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.MailConfig
		wantErr string
		want    any
	}{
		{name: "missing section falls back to log", cfg: nil, want: &logMailer{}},
		{name: "log provider", cfg: &config.MailConfig{Provider: "log"}, want: &logMailer{}},
		{
			name: "postmark",
			cfg:  &config.MailConfig{Provider: "postmark", PostmarkServerToken: "token", SenderAddress: "no-reply@example.com"},
			want: &postmarkMailer{},
		},
		{
			name: "sendgrid",
			cfg:  &config.MailConfig{Provider: "sendgrid", SendGridAPIKey: "key", SenderAddress: "no-reply@example.com"},
			want: &sendGridMailer{},
		},
		{
			name:    "postmark without token",
			cfg:     &config.MailConfig{Provider: "postmark", SenderAddress: "no-reply@example.com"},
			wantErr: "postmarkServerToken",
		},
		{
			name:    "missing sender",
			cfg:     &config.MailConfig{Provider: "sendgrid", SendGridAPIKey: "key"},
			wantErr: "senderAddress",
		},
		{
			name:    "unknown provider",
			cfg:     &config.MailConfig{Provider: "pigeon", SenderAddress: "no-reply@example.com"},
			wantErr: "unknown mail provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer, err := NewMailer(newTestParams(tt.cfg))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, mailer)
		})
	}
}

func TestLogMailerNeverFails(t *testing.T) {
	mailer := NewLogMailer(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := mailer.Send(context.Background(), &service.Email{To: "amy@example.com", Subject: "Hello"})

	assert.NoError(t, err)
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "no-reply@example.com", formatAddress("", "no-reply@example.com"))
	assert.Equal(t, `"Marketplace" <no-reply@example.com>`, formatAddress("Marketplace", "no-reply@example.com"))
}
