package service

import "context"

// Email is a single transactional message.
type Email struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
	Tag      string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
