package contract

//go:generate mockgen -source=mailer.go -destination=mocks/mailer.go -package=mocks

import (
	"context"
	"hotel-booking/model"
)

// Mailer delivers a staff notification through the transactional email provider.
type Mailer interface {
	Send(ctx context.Context, msg model.MailMessage) error
}

// EmailSender delivers plaintext mail over SMTP.
type EmailSender interface {
	Send(to []string, subject string, body string) error
}
