package port

import "context"

// EmailSender delivers a plain-text email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
